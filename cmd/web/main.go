package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"diabetesrisk/internal/app"
	"diabetesrisk/internal/collector"
	"diabetesrisk/internal/web"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config file")
	flag.Parse()

	env, err := app.Bootstrap(*configPath)
	if err != nil {
		os.Stderr.WriteString("startup: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := env.Logger
	defer logger.Sync()

	srv, err := web.New(env.Adapter, collector.New(env.Adapter.Binding(), logger), logger)
	if err != nil {
		logger.Fatal("parse templates", zap.Error(err))
	}
	httpSrv := &http.Server{
		Addr:              env.Config.Server.Addr,
		Handler:           srv.Router(env.Config.Server.Mode),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
	logger.Info("stopped")
}
