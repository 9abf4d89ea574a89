package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/ferd-app/ferd-server/internal/bootstrap"
	"github.com/ferd-app/ferd-server/internal/config"
	"github.com/ferd-app/ferd-server/internal/modules/handler"
	"github.com/ferd-app/ferd-server/internal/router"
)

//	@title			Ferd API
//	@version		1.0
//	@description	Hidden spots discovery backend.
//	@BasePath		/api

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync() //nolint:errcheck

	gin.SetMode(cfg.Server.GinMode)

	r := router.NewRouter(router.RouterDeps{
		Config:        cfg,
		Log:           log,
		SpotHandler:   do.MustInvoke[*handler.SpotHandler](inj),
		ReviewHandler: do.MustInvoke[*handler.ReviewHandler](inj),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
