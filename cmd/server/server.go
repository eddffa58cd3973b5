package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"blog/internal/config"
	"blog/internal/db"
	"blog/internal/logger"
	"blog/internal/router"
	"blog/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		gin.SetMode(cfg.GinMode)

		zl, err := logger.New(cfg.LogLevel, cfg.GinMode == gin.DebugMode)
		if err != nil {
			return err
		}
		defer func() { _ = zl.Sync() }()
		log := zl.Sugar()

		conn, err := db.Open(cfg.Database)
		if err != nil {
			log.Errorw("database connection failed", "error", err)
			return err
		}
		defer func() { _ = db.Close(conn) }()
		log.Infow("database connection established", "driver", cfg.Database.Driver)

		if cfg.Database.AutoMigrate {
			if err := db.Migrate(conn); err != nil {
				log.Errorw("database migration failed", "error", err)
				return err
			}
			log.Info("database migration completed")
		}

		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router.New(store.New(conn), log),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Infow("blog server starting", "addr", srv.Addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
