package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayo6706/wallet-fx-cli/internal/config"
	"github.com/ayo6706/wallet-fx-cli/internal/domain"
	"github.com/ayo6706/wallet-fx-cli/internal/gateway"
	"go.uber.org/zap"
)

// App bundles the shared startup state every command needs: configuration,
// logger, gateway client, and an authenticated session.
type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Client  *gateway.Client
	Session *domain.Session
}

// Bootstrap loads configuration, builds the logger and gateway client, and
// authenticates once. The resulting session is read-only for the process
// lifetime and never refreshed mid-workflow.
func Bootstrap(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client := gateway.NewClient(cfg, logger)

	logger.Info("authenticating", zap.String("base_url", cfg.BaseURL))
	session, err := client.Authenticate(ctx, gateway.Credentials{
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{Config: cfg, Log: logger, Client: client, Session: session}, nil
}

// Close flushes buffered log entries.
func (a *App) Close() {
	_ = a.Log.Sync()
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	switch strings.ToLower(level) {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info", "":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
