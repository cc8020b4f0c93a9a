package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ougirez/rifmis/internal/api"
	"github.com/ougirez/rifmis/internal/pkg/config"
	"github.com/ougirez/rifmis/internal/pkg/logger"
	"github.com/ougirez/rifmis/internal/pkg/store"
	"github.com/ougirez/rifmis/internal/pkg/store/xpgx"
	"github.com/ougirez/rifmis/internal/service/auth"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configFile := flag.String("config", "", "config file path (yaml, json or toml)")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	pool, err := xpgx.Connect(ctx, xpgx.Options{
		DSN:            cfg.DB.DSN,
		MaxConns:       cfg.DB.MaxConns,
		ConnectTimeout: cfg.DB.ConnectTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	st := store.NewStore(pool, store.Options{
		Schema:          cfg.DB.Schema,
		ReferenceSchema: cfg.DB.ReferenceSchema,
	})
	authService := auth.NewService(cfg.Auth.Secret, cfg.Auth.CookieName, cfg.Auth.TokenTTL)

	svc, err := api.NewAPIService(st, authService, api.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		BodyLimit:   cfg.Server.BodyLimit,
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(cfg.Server.Addr)
	logger.Infof(ctx, "listening on %s", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, err)
	}
}
