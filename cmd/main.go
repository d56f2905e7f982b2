package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Pranav7758/digital-setu-hub/internal/api/http/router"
	"github.com/Pranav7758/digital-setu-hub/internal/config"
	"github.com/Pranav7758/digital-setu-hub/internal/logger"
	"github.com/Pranav7758/digital-setu-hub/internal/model"
	"github.com/Pranav7758/digital-setu-hub/internal/repository/postgres"
	"github.com/Pranav7758/digital-setu-hub/internal/server"
	"github.com/Pranav7758/digital-setu-hub/internal/service"
	storage "github.com/Pranav7758/digital-setu-hub/internal/storage/minio"
	"github.com/Pranav7758/digital-setu-hub/internal/token"
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
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	documentRepo := postgres.NewDocumentRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	shareService := service.NewShare(profileRepo, userRepo, documentRepo, storageClient,
		cfg.Storage.Bucket, cfg.Share.SignTTL, cfg.Share.CallTimeout, logger)
	authService := service.NewAuth(userRepo, profileRepo, tokenManager, logger)
	documentService := service.NewDocument(documentRepo, userRepo, storageClient,
		cfg.Storage.Bucket, cfg.Share.SignTTL, logger)
	checklistService := service.NewChecklist(documentRepo)

	mux := router.New(shareService, authService, documentService, checklistService, tokenManager, logger).Register()
	httpServer := server.NewHTTPServer(mux, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion(logger)

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion(logger *logger.Logger) {
	logger.Info("Build info",
		"version", buildVersion,
		"date", buildDate,
		"commit", buildCommit)
}
