package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	notifhandler "github.com/aliskhannn/assist-notify/internal/api/handlers/notification"
	sethandler "github.com/aliskhannn/assist-notify/internal/api/handlers/settings"
	"github.com/aliskhannn/assist-notify/internal/api/router"
	"github.com/aliskhannn/assist-notify/internal/api/server"
	"github.com/aliskhannn/assist-notify/internal/config"
	"github.com/aliskhannn/assist-notify/internal/delivery"
	"github.com/aliskhannn/assist-notify/internal/grouping"
	"github.com/aliskhannn/assist-notify/internal/settings"
	"github.com/aliskhannn/assist-notify/internal/store"
	"github.com/aliskhannn/assist-notify/internal/stream"
	"github.com/aliskhannn/assist-notify/internal/worker"
	"github.com/aliskhannn/assist-notify/pkg/audio"
	"github.com/aliskhannn/assist-notify/pkg/desktop"
	"github.com/aliskhannn/assist-notify/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	settingsStore := settings.NewStore(rdb, cfg.Retry, cfg.Settings.Key)
	if err := settingsStore.Load(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load settings")
	}
	settingsStore.Subscribe(func(s settings.Settings) {
		zlog.Logger.Info().Bool("enabled", s.Notifications.Enabled).Msg("settings updated")
	})

	var player delivery.Player
	if p, err := audio.NewPlayer(cfg.Audio.SoundFile); err != nil {
		zlog.Logger.Warn().Err(err).Msg("audio unavailable, sound alerts disabled")
		player = audio.Muted{}
	} else {
		player = p
	}

	notifStore := store.New()
	groups := grouping.NewEngine(notifStore)
	gate := delivery.New(settingsStore, player, desktop.NewAlerter(cfg.Desktop.Icon), email.NewClient())

	streamClient := stream.NewClient(cfg.Stream.URL, cfg.Stream.ReconnectPause)
	go streamClient.Run(ctx)

	go worker.NewIntake(streamClient, notifStore, gate).Run(ctx)
	go worker.NewSweeper(notifStore, gate, cfg.Sweep.Interval).Run(ctx)

	r := router.New(
		notifhandler.NewHandler(notifStore, groups, val),
		sethandler.NewHandler(settingsStore),
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}
}
