package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/cycles-bot/internal/config"
	"github.com/rocketscienceinc/cycles-bot/internal/engine"
	"github.com/rocketscienceinc/cycles-bot/internal/repository"
	"github.com/rocketscienceinc/cycles-bot/internal/repository/storage"
	"github.com/rocketscienceinc/cycles-bot/internal/service"
	"github.com/rocketscienceinc/cycles-bot/internal/transport/gameclient"
	"github.com/rocketscienceinc/cycles-bot/internal/usecase"
	"github.com/rocketscienceinc/cycles-bot/transport/rest"
)

var ErrPlayerNameMissing = errors.New("player name is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if conf.PlayerName == "" {
		return ErrPlayerNameMissing
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	strategy, err := engine.New(conf.Strategy, conf.SearchDepth)
	if err != nil {
		return fmt.Errorf("could not build strategy %q: %w", conf.Strategy, err)
	}

	matchRepo := repository.NewNoopMatchRepository()
	if redisAddr := conf.Redis.GetRedisAddr(); redisAddr != "" {
		redisStorage, storageErr := storage.New(ctx, redisAddr)
		if storageErr != nil {
			return fmt.Errorf("could not connect to redis storage: %w", storageErr)
		}

		defer func() {
			if closeErr := redisStorage.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}()

		matchRepo = repository.NewMatchRepository(redisStorage)
	}

	client, err := gameclient.Connect(ctx, logger, conf.ServerURL, conf.PlayerName)
	if err != nil {
		return fmt.Errorf("could not connect to game server: %w", err)
	}

	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Error("could not close game connection", "error", closeErr)
		}
	}()

	pilotService := service.NewPilotService(conf.PlayerName, strategy)
	session := usecase.NewSessionManager(logger, pilotService, client, matchRepo, conf.PlayerName)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(conf.HTTPPort, session); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run game session
	sessionErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game session", "player", conf.PlayerName, "strategy", conf.Strategy)
		sessionErrCh <- session.Run(ctx)
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-sessionErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("game session error: %w", err)
		}
		log.Info("Game session ended")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
