package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"

	grpcctx "github.com/dtroode/userdirectory/internal/api/grpc/context"
	"github.com/dtroode/userdirectory/internal/api/grpc/router"
	grpcServer "github.com/dtroode/userdirectory/internal/api/grpc/server"
	"github.com/dtroode/userdirectory/internal/config"
	"github.com/dtroode/userdirectory/internal/loader"
	"github.com/dtroode/userdirectory/internal/logger"
	"github.com/dtroode/userdirectory/internal/model"
	"github.com/dtroode/userdirectory/internal/repository/postgres"
	"github.com/dtroode/userdirectory/internal/seed"
	"github.com/dtroode/userdirectory/internal/server"
	storage "github.com/dtroode/userdirectory/internal/storage/minio"
	"github.com/dtroode/userdirectory/internal/store"
	"github.com/dtroode/userdirectory/internal/view"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	users, err := loadSeed(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to load seed users", "source", cfg.Seed.Source, "error", err)
	}
	logger.Info("seed users loaded", "source", cfg.Seed.Source, "count", len(users))

	userStore := store.New(users, logger.With("component", "store"))
	defer userStore.Close()

	dataLoader := loader.New(cfg.Loader.Delay, logger.With("component", "loader"))
	defer dataLoader.Close()

	listView := view.NewList(userStore, dataLoader, logger.With("component", "list_view"))
	detailView := view.NewDetail(userStore, logger.With("component", "detail_view"))

	grpcServer := registerGRPCServer(logger, userStore, listView, detailView, fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := server.NewSecurityLayer(cfg.GRPC)

	logAppVersion()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server on", "address", grpcServer.Address(), "tls", cfg.GRPC.EnableHTTPS)
		return grpcServer.Start(sl)
	})
	g.Go(func() error {
		return listView.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("received interruption signal, shutting down")

		if err := shutdown(grpcServer, dataLoader, cfg.GRPC.ShutdownTimeout); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
	}
	logger.Info("shutdown complete")
}

// shutdown closes the loader first so open WatchUsers streams end and the
// graceful stop does not wait for them until the timeout.
func shutdown(srv model.Server, dataLoader *loader.Loader, timeout time.Duration) error {
	dataLoader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return srv.Stop(ctx)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// loadSeed reads the initial collection from the configured source.
// Connections opened for the seed are closed before returning.
func loadSeed(ctx context.Context, cfg *config.Config, logger *logger.Logger) ([]model.User, error) {
	var source model.SeedSource

	switch cfg.Seed.Source {
	case config.SeedSourceStatic:
		source = seed.NewStatic(cfg.Seed.File)

	case config.SeedSourcePostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close database", "error", err)
			}
		}()
		source = seed.NewDatabase(postgres.NewSeedRepository(db))

	case config.SeedSourceMinio:
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage client: %w", err)
		}
		source = seed.NewObject(storageClient, cfg.Storage.Object)

	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownSeedSource, cfg.Seed.Source)
	}

	return source.Users(ctx)
}

func registerGRPCServer(
	logger *logger.Logger,
	userStore *store.Store,
	listView *view.ListView,
	detailView *view.DetailView,
	addr string,
) model.Server {
	r := router.New(userStore, listView, detailView, grpcctx.NewManager(), logger)
	s := r.Register()

	return grpcServer.NewGRPCServer(s, addr)
}
