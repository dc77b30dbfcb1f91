package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flicktickets/internal/auth"
	"flicktickets/internal/cache"
	intconfig "flicktickets/internal/config"
	router "flicktickets/internal/http"
	"flicktickets/internal/http/handlers"
	"flicktickets/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := utils.InitLogger(gin.Mode())
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer intconfig.CloseDB()

	deps := handlers.Deps{
		DB:             db,
		CacheTTL:       env.CatalogCacheTTL,
		Tokens:         auth.NewTokens(env.JWTSecret, 24*time.Hour),
		AdminUsernames: env.AdminUsernames,
	}

	if env.RedisAddr != "" {
		client, err := cache.Connect(context.Background(), env.RedisAddr, env.RedisPassword, env.RedisDB)
		if err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", zap.String("addr", env.RedisAddr), zap.Error(err))
		} else {
			defer client.Close()
			deps.Cache = cache.NewRedisCatalogCache(client)
		}
	}

	if !env.AdminAuth {
		logger.Warn("admin endpoints are not protected (ADMIN_AUTH=false)")
	}

	r := router.NewRouter(env, deps)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
		return
	}

	logger.Info("server stopped")
}
