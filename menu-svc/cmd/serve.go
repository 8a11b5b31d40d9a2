package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"overcooked-menu/config"
	httpapi "overcooked-menu/menu-svc/internal/api/http"
	"overcooked-menu/menu-svc/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the menu HTTP API with the registry worker and snapshot ingest",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.worker.Run(ctx)
		}()

		if cfg.KafkaBroker != "" {
			reader := config.NewKafkaReader(cfg)
			defer reader.Close()

			ingestor := service.NewSnapshotIngestor(reader, a.store, logger)
			wg.Add(1)
			go func() {
				defer wg.Done()
				ingestor.Start(ctx)
			}()
		}

		server := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           httpapi.NewRouter(httpapi.NewHandler(a.menus, logger)),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("menu service starting", "addr", cfg.HTTPAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case <-ctx.Done():
		case err := <-errCh:
			stop()
			wg.Wait()
			return err
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = server.Shutdown(shutdownCtx)
		wg.Wait()
		return err
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8084", "HTTP listen address")
	serveCmd.Flags().Bool("reconcile-writer", true, "reconcile registries against the store instead of only reloading them")
	viper.BindPFlag("http_addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("reconcile_writer", serveCmd.Flags().Lookup("reconcile-writer"))
}
