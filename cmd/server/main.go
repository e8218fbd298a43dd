package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/getnaildla/salon-frontdesk/internal/api"
	"github.com/getnaildla/salon-frontdesk/internal/core/ports"
	"github.com/getnaildla/salon-frontdesk/internal/core/service"
	"github.com/getnaildla/salon-frontdesk/internal/infrastructure/db/redis"
	"github.com/getnaildla/salon-frontdesk/internal/infrastructure/salonapi"
	"github.com/getnaildla/salon-frontdesk/internal/pkg/config"
	"github.com/getnaildla/salon-frontdesk/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis backs the roster cache. The service runs without it; every
	// roster read then goes straight to the salon API.
	var rdb *goredis.Client
	var cache ports.RosterCache
	if client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, roster cache disabled")
	} else {
		rdb = client
		cache = redis.NewRosterCache(client)
	}

	salon := salonapi.NewClient(cfg.Salon.BaseURL, log)
	store := service.NewAppointmentStore()
	roster := service.NewRosterService(salon, cache, log)
	schedule := service.NewScheduleService(salon, roster, store, log)
	calendar := service.NewCalendarService(salon, roster, store, log)

	// Warm the in-memory collection so the first week view renders without
	// waiting on the remote API. A failed warm-up is logged inside Refresh
	// and retried on the next /v1/refresh.
	warmCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	_ = calendar.Refresh(warmCtx)
	cancel()

	e := api.NewRouter(api.Dependencies{
		Salon:     salon,
		Calendar:  calendar,
		Schedule:  schedule,
		Resolver:  service.NewRoleResolver(cfg.AdminEmail, cfg.StaffEmails),
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}
