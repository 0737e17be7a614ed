package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/iamshakil01/clubsphere-servers/internal/config"
	"github.com/iamshakil01/clubsphere-servers/internal/handler"
	"github.com/iamshakil01/clubsphere-servers/internal/middleware"
	"github.com/iamshakil01/clubsphere-servers/internal/router"
	"github.com/iamshakil01/clubsphere-servers/internal/scheduler"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	core       *Core
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := InitLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	if err = RunMigrations(cfg.Postgres.DSN()); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	app.log.Info("migrations applied successfully")

	core, err := NewCore(cfg, log)
	if err != nil {
		return nil, err
	}
	app.core = core

	app.initHTTP()

	return app, nil
}

func (a *App) initHTTP() {
	a.scheduler = scheduler.New(
		a.core.Outbox,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(handler.Services{
		Events:         a.core.Events,
		Registrations:  a.core.Registrations,
		Checkout:       a.core.Checkout,
		Reconciliation: a.core.Reconciliation,
		Payments:       a.core.Payments,
		Clubs:          a.core.Clubs,
		Users:          a.core.Users,
		Admin:          a.core.Admin,
	})
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.core.Verifier),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Deadline(a.cfg.Server.RequestTimeout),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		_ = a.core.Close()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.core.Close(); err != nil {
		return fmt.Errorf("close core: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
