package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecotrack-iot/ecotrack-backend/config"
	"github.com/ecotrack-iot/ecotrack-backend/internal/auth"
	"github.com/ecotrack-iot/ecotrack-backend/internal/bootstrap"
	devicerepo "github.com/ecotrack-iot/ecotrack-backend/internal/devices/repository"
	deviceservice "github.com/ecotrack-iot/ecotrack-backend/internal/devices/service"
	"github.com/ecotrack-iot/ecotrack-backend/internal/storage/postgres"
	redisstore "github.com/ecotrack-iot/ecotrack-backend/internal/storage/redis"
)

const serviceName = "ecotrack-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("Database schema verified")

	// The cache is optional: analytics falls back to the database when
	// Redis is unreachable.
	cache, err := redisstore.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: %v (continuing without warm cache)", err)
	}
	defer cache.Close()

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	sweeper := deviceservice.NewSweeper(
		devicerepo.NewDeviceRepository(db),
		cfg.Devices.OfflineAfter,
		cfg.Devices.SweepSpec,
	)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("device sweeper: %v", err)
	}
	defer sweeper.Stop()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		DB:          db,
		Redis:       cache,
		Tokens:      tokens,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
