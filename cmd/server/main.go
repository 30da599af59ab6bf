package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/charityflow-backend/internal/adapter/grpc"
	charityv1 "github.com/simaogato/charityflow-backend/internal/adapter/grpc/charity/v1"
	httpapi "github.com/simaogato/charityflow-backend/internal/adapter/http"
	"github.com/simaogato/charityflow-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/charityflow-backend/internal/auth"
	"github.com/simaogato/charityflow-backend/internal/config"
	"github.com/simaogato/charityflow-backend/internal/logging"
	"github.com/simaogato/charityflow-backend/internal/usecase/donation"
	"github.com/simaogato/charityflow-backend/internal/usecase/project"
	"github.com/simaogato/charityflow-backend/internal/usecase/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger := logging.New(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 1. Setup Database
	db, err := postgres.NewDB(ctx, cfg.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("failed to apply migrations")
		}
		logger.Info().Msg("database schema is up to date")
	}

	// 2. Initialize Repositories (Postgres)
	projectRepo := postgres.NewCharityProjectRepository(db)
	donationRepo := postgres.NewDonationRepository(db)
	transactor := postgres.NewTransactor(db)

	// 3. Initialize Services (Use Cases)
	projectService := project.NewProjectService(projectRepo, donationRepo, transactor, logger)
	donationService := donation.NewDonationService(donationRepo, projectRepo, transactor, logger)
	reportService := report.NewReportService(projectRepo)

	authenticator, err := auth.NewAuthenticator(cfg.JWTSecret, cfg.JWTTokenTTL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure authentication")
	}

	// 4. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(authenticator, grpcadapter.PublicMethods...),
		),
	)
	charityv1.RegisterCharityServiceServer(grpcServer, grpcadapter.NewServer(projectService, donationService, reportService))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("failed to listen")
	}

	go func() {
		logger.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("gRPC server stopped with error")
			stop()
		}
	}()

	// 5. Start HTTP Server
	handler := httpapi.NewHandler(projectService, donationService, reportService, authenticator, logger)
	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("HTTP server stopped with error")
			stop()
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	logger.Info().Msg("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	grpcServer.GracefulStop()
	logger.Info().Msg("servers stopped")
}
