// Package directorypb describes the userdirectory.v1.UserDirectory gRPC
// service. Messages are protobuf well-known types, so no generated message
// code is needed; the descriptor and client below follow the layout
// protoc-gen-go-grpc produces.
package directorypb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified service name.
const ServiceName = "userdirectory.v1.UserDirectory"

const (
	ListUsersFullMethodName    = "/" + ServiceName + "/ListUsers"
	GetUserFullMethodName      = "/" + ServiceName + "/GetUser"
	WatchUsersFullMethodName   = "/" + ServiceName + "/WatchUsers"
	ReplaceUsersFullMethodName = "/" + ServiceName + "/ReplaceUsers"
	AddUserFullMethodName      = "/" + ServiceName + "/AddUser"
	UpdateUserFullMethodName   = "/" + ServiceName + "/UpdateUser"
	DeleteUserFullMethodName   = "/" + ServiceName + "/DeleteUser"
)

// UserDirectoryServer is the server API for the UserDirectory service.
type UserDirectoryServer interface {
	// ListUsers renders the list page.
	ListUsers(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// GetUser renders the detail page for a raw id path segment.
	GetUser(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	// WatchUsers streams the list page on every loading transition.
	WatchUsers(*emptypb.Empty, grpc.ServerStreamingServer[structpb.Struct]) error
	ReplaceUsers(context.Context, *structpb.ListValue) (*emptypb.Empty, error)
	AddUser(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	UpdateUser(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteUser(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
}

// RegisterUserDirectoryServer registers srv on s.
func RegisterUserDirectoryServer(s grpc.ServiceRegistrar, srv UserDirectoryServer) {
	s.RegisterService(&UserDirectory_ServiceDesc, srv)
}

func unary[Req any](fullMethod string, call func(UserDirectoryServer, context.Context, *Req) (any, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(UserDirectoryServer), ctx, req.(*Req))
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		return interceptor(ctx, in, info, handler)
	}
}

func watchUsersHandler(srv any, stream grpc.ServerStream) error {
	m := new(emptypb.Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(UserDirectoryServer).WatchUsers(m, &grpc.GenericServerStream[emptypb.Empty, structpb.Struct]{ServerStream: stream})
}

// UserDirectory_ServiceDesc is the grpc.ServiceDesc for the UserDirectory service.
var UserDirectory_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserDirectoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListUsers",
			Handler: unary(ListUsersFullMethodName, func(s UserDirectoryServer, ctx context.Context, in *emptypb.Empty) (any, error) {
				return s.ListUsers(ctx, in)
			}),
		},
		{
			MethodName: "GetUser",
			Handler: unary(GetUserFullMethodName, func(s UserDirectoryServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
				return s.GetUser(ctx, in)
			}),
		},
		{
			MethodName: "ReplaceUsers",
			Handler: unary(ReplaceUsersFullMethodName, func(s UserDirectoryServer, ctx context.Context, in *structpb.ListValue) (any, error) {
				return s.ReplaceUsers(ctx, in)
			}),
		},
		{
			MethodName: "AddUser",
			Handler: unary(AddUserFullMethodName, func(s UserDirectoryServer, ctx context.Context, in *structpb.Struct) (any, error) {
				return s.AddUser(ctx, in)
			}),
		},
		{
			MethodName: "UpdateUser",
			Handler: unary(UpdateUserFullMethodName, func(s UserDirectoryServer, ctx context.Context, in *structpb.Struct) (any, error) {
				return s.UpdateUser(ctx, in)
			}),
		},
		{
			MethodName: "DeleteUser",
			Handler: unary(DeleteUserFullMethodName, func(s UserDirectoryServer, ctx context.Context, in *wrapperspb.Int64Value) (any, error) {
				return s.DeleteUser(ctx, in)
			}),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchUsers",
			Handler:       watchUsersHandler,
			ServerStreams: true,
		},
	},
	Metadata: "userdirectory/v1/directory.proto",
}

// UserDirectoryClient is the client API for the UserDirectory service.
type UserDirectoryClient interface {
	ListUsers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetUser(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	WatchUsers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error)
	ReplaceUsers(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	AddUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UpdateUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteUser(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type userDirectoryClient struct {
	cc grpc.ClientConnInterface
}

// NewUserDirectoryClient creates a client on cc.
func NewUserDirectoryClient(cc grpc.ClientConnInterface) UserDirectoryClient {
	return &userDirectoryClient{cc}
}

func (c *userDirectoryClient) ListUsers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListUsersFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userDirectoryClient) GetUser(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetUserFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userDirectoryClient) WatchUsers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &UserDirectory_ServiceDesc.Streams[0], WatchUsersFullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[emptypb.Empty, structpb.Struct]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *userDirectoryClient) ReplaceUsers(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, ReplaceUsersFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userDirectoryClient) AddUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, AddUserFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userDirectoryClient) UpdateUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, UpdateUserFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userDirectoryClient) DeleteUser(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, DeleteUserFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
