package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/userdirectory/internal/api/grpc/directorypb"
	"github.com/dtroode/userdirectory/internal/logger"
	"github.com/dtroode/userdirectory/internal/model"
	"github.com/dtroode/userdirectory/internal/view"
)

// UserStore is the write side of the user store.
type UserStore interface {
	ReplaceAll(users []model.User)
	Add(user model.User)
	Update(user model.User)
	Delete(id int64)
}

// ListRenderer renders and streams the list page.
type ListRenderer interface {
	Render() view.ListPage
	Watch(ctx context.Context, send func(view.ListPage) error) error
}

// DetailRenderer renders the detail page for a raw id.
type DetailRenderer interface {
	Render(rawID string) view.DetailPage
}

var _ directorypb.UserDirectoryServer = (*Directory)(nil)

// Directory handles gRPC endpoints of the user directory.
type Directory struct {
	store  UserStore
	list   ListRenderer
	detail DetailRenderer
	logger *logger.Logger
}

// NewDirectory creates a new Directory handler.
func NewDirectory(store UserStore, list ListRenderer, detail DetailRenderer, logger *logger.Logger) *Directory {
	return &Directory{
		store:  store,
		list:   list,
		detail: detail,
		logger: logger,
	}
}

// ListUsers renders the list page.
func (h *Directory) ListUsers(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	page, err := listPageToStruct(h.list.Render())
	if err != nil {
		h.logger.Error("Directory handler: list render failed", "error", err.Error())
		return nil, handleError(err)
	}
	return page, nil
}

// GetUser renders the detail page. Unknown or malformed ids are not errors:
// they render the not-found page.
func (h *Directory) GetUser(_ context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	page, err := detailPageToStruct(h.detail.Render(req.GetValue()))
	if err != nil {
		h.logger.Error("Directory handler: detail render failed",
			"raw_id", req.GetValue(),
			"error", err.Error())
		return nil, handleError(err)
	}
	return page, nil
}

// WatchUsers streams the list page on every loading transition until the client goes away.
func (h *Directory) WatchUsers(_ *emptypb.Empty, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	err := h.list.Watch(stream.Context(), func(p view.ListPage) error {
		page, err := listPageToStruct(p)
		if err != nil {
			return err
		}
		return stream.Send(page)
	})
	if err != nil {
		h.logger.Debug("Directory handler: watch ended", "error", err.Error())
		return handleError(err)
	}
	return nil
}

// ReplaceUsers replaces the whole collection.
func (h *Directory) ReplaceUsers(_ context.Context, req *structpb.ListValue) (*emptypb.Empty, error) {
	users, err := usersFromList(req)
	if err != nil {
		return nil, handleError(err)
	}

	h.store.ReplaceAll(users)
	h.logger.Info("Directory handler: users replaced", "count", len(users))
	return &emptypb.Empty{}, nil
}

// AddUser appends a user.
func (h *Directory) AddUser(_ context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	u, err := userFromStruct(req)
	if err != nil {
		return nil, handleError(err)
	}

	h.store.Add(u)
	h.logger.Info("Directory handler: user added", "user_id", u.ID)
	return &emptypb.Empty{}, nil
}

// UpdateUser replaces the user with the same id; unknown ids are ignored.
func (h *Directory) UpdateUser(_ context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	u, err := userFromStruct(req)
	if err != nil {
		return nil, handleError(err)
	}

	h.store.Update(u)
	h.logger.Info("Directory handler: user updated", "user_id", u.ID)
	return &emptypb.Empty{}, nil
}

// DeleteUser removes the user; unknown ids are ignored.
func (h *Directory) DeleteUser(_ context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	h.store.Delete(req.GetValue())
	h.logger.Info("Directory handler: user deleted", "user_id", req.GetValue())
	return &emptypb.Empty{}, nil
}
