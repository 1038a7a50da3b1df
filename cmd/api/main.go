package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stockquote-gateway/internal/bootstrap"
	"stockquote-gateway/internal/config"
	"stockquote-gateway/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	cfg := config.Load()
	logger, err := logx.Init(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	api, err := bootstrap.InitAPI(cfg, logger)
	if err != nil {
		logger.Fatal("bootstrap", zap.Error(err))
	}

	addr := ":" + cfg.Port
	servers := []*http.Server{{Addr: addr, Handler: api.Handler}}
	if api.MetricsHandler != nil {
		servers = append(servers, &http.Server{Addr: cfg.MetricsAddr, Handler: api.MetricsHandler})
	}

	for _, srv := range servers {
		go func(srv *http.Server) {
			logger.Info("server started", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal("listen", zap.String("addr", srv.Addr), zap.Error(err))
			}
		}(srv)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.String("addr", srv.Addr), zap.Error(err))
		}
	}
	logger.Info("server stopped")
}
