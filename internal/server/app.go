// Package server wires the application together: storage backend, password
// hasher, model provider, services, and the HTTP API, with signal-driven
// shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/logging"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/provider"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/blob"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/config"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/hashing"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/httpapi"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/repositories/repomanager"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	api    *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	var repos repomanager.RepositoryManager
	var err error
	if cfg.DatabaseDSN != "" {
		repos, err = repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	} else {
		repos, err = repomanager.NewFileRepositoryManager(cfg.DataDir)
	}
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	hasher, err := hashing.New(cfg.HashScheme)
	if err != nil {
		return nil, err
	}

	if cfg.GeminiAPIKey == "" {
		logger.Warn(context.Background(), "GEMINI_API_KEY is not set; model calls will fail and surface as error replies")
	}
	llm := provider.NewGemini(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ProviderTimeout)

	var blobs blob.Store
	if cfg.S3BaseEndpoint != "" {
		blobs = blob.NewS3Store(blob.S3Config{
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	}

	userService := services.NewUserService(repos.Users(), hasher, cfg, logger)
	chatService := services.NewChatService(repos.Sessions(), llm, blobs, logger)

	api := httpapi.NewServer(cfg.EndpointAddrHTTP, []byte(cfg.SecretKey), userService, chatService, logger)

	return &App{config: cfg, logger: logger, repos: repos, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repos.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err)
		return
	}
	defer func() {
		if err := app.repos.Close(); err != nil {
			app.logger.Error(ctx, "storage close failed", "error", err)
		}
	}()

	app.initSignalHandler(cancelFunc)

	if err := app.api.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
