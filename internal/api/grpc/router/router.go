package router

import (
	"google.golang.org/grpc"

	"github.com/dtroode/userdirectory/internal/api/grpc/directorypb"
	"github.com/dtroode/userdirectory/internal/api/grpc/handler"
	"github.com/dtroode/userdirectory/internal/api/grpc/middleware"
	"github.com/dtroode/userdirectory/internal/logger"
	"github.com/dtroode/userdirectory/internal/model"
)

// Router represents a gRPC router for user directory operations.
// It plays the part of the path router: the list and detail pages are
// reached through ListUsers and GetUser.
type Router struct {
	store      handler.UserStore
	list       handler.ListRenderer
	detail     handler.DetailRenderer
	requestIDs model.RequestIDManager
	logger     *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	store handler.UserStore,
	list handler.ListRenderer,
	detail handler.DetailRenderer,
	requestIDs model.RequestIDManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		store:      store,
		list:       list,
		detail:     detail,
		requestIDs: requestIDs,
		logger:     logger,
	}
}

// Register builds the gRPC server with recovery and logging interceptors
// and registers the directory service on it.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger, r.requestIDs)
	recovery := middleware.NewRecovery(r.logger)

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			recovery.Unary(),
			logging.HandleGRPC,
		),
		grpc.ChainStreamInterceptor(
			recovery.Stream(),
			middleware.StreamLogging(r.logger),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerDirectoryRoutes(s)

	return s
}

func (r *Router) registerDirectoryRoutes(server *grpc.Server) {
	directoryHandler := handler.NewDirectory(r.store, r.list, r.detail, r.logger)
	directorypb.RegisterUserDirectoryServer(server, directoryHandler)
}
