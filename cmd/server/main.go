package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Gusi-ui/sadmini-sub001/config"
	"github.com/Gusi-ui/sadmini-sub001/internal/api/handler"
	"github.com/Gusi-ui/sadmini-sub001/internal/api/router"
	"github.com/Gusi-ui/sadmini-sub001/internal/cron"
	"github.com/Gusi-ui/sadmini-sub001/internal/repository"
	"github.com/Gusi-ui/sadmini-sub001/internal/service"
	"github.com/Gusi-ui/sadmini-sub001/pkg/database"
	"github.com/Gusi-ui/sadmini-sub001/pkg/jwt"
	applogger "github.com/Gusi-ui/sadmini-sub001/pkg/logger"
	"github.com/Gusi-ui/sadmini-sub001/pkg/redis"
)

func main() {
	// 1. load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config failed: %v\n", err)
		os.Exit(1)
	}

	// 2. logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting up",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connected")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("getting sql.DB handle failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. redis is optional; token revocation and rate limits degrade without it
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis connection failed, token revocation disabled", zap.Error(err))
		rdb = nil
	}

	// 5. token manager
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. dependency wiring: repository → service → handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. routes
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. background jobs
	scheduler, err := cron.NewScheduler(repo, logger)
	if err != nil {
		logger.Fatal("cron setup failed", zap.Error(err))
	}
	scheduler.Start()

	// 9. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	scheduler.Stop()

	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
