// @title                       iLO monitor API
// @version                     1.0
// @description                 Power, UID, inventory and event log access to an HP iLO controller over RIBCL.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ilo_monitor/internal/config"
	"ilo_monitor/internal/handlers"
	"ilo_monitor/internal/logger"
	"ilo_monitor/internal/repository"
	"ilo_monitor/internal/repository/db"
	"ilo_monitor/internal/ribcl"
	"ilo_monitor/internal/server"
	"ilo_monitor/internal/service"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configPath string
	root := &cobra.Command{
		Use:           "ilo-monitor",
		Short:         "HTTP API and monitor loop for an HP iLO controller",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to config.yml (default: configs/config.yml)")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		logger.Get(logger.InfoLevel).Errorw("ilo-monitor stopped", "err", err)
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is cancelled by a signal or the listener fails.
func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("close sqlite", "err", cerr)
		}
	}()

	client := ribcl.NewClient(cfg.ILO, ribcl.WithLogger(log))
	services := service.NewService(repository.NewRepository(conn), client, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		Log:        log,
	})

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()
	if cfg.Monitor.Enabled {
		go services.Monitor.Run(monitorCtx, cfg.Monitor.Interval)
	} else {
		log.Infow("monitor disabled")
	}

	srv := server.New(cfg.Port, handlers.NewHandler(services, log).InitRoutes())
	if err := srv.Start(); err != nil {
		return err
	}
	log.Infow("server started", "addr", srv.Addr(), "ilo", cfg.ILO.URL(), "db", cfg.DB.Path)

	select {
	case err := <-srv.Done():
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	stopMonitor()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("forced shutdown", "err", err)
	}
	return nil
}
