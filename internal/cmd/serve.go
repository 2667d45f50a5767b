package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sahla-io/dukkan/internal/policy"
	"github.com/sahla-io/dukkan/internal/server"
)

var serveAPIKeys []string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, span := tracer.Start(cmd.Context(), "serve")
		defer span.End()

		cfg, store, router, err := buildRouter()
		if err != nil {
			return err
		}

		opts := []server.Option{
			server.WithDefaultRole(policy.ParseRole(cfg.DefaultRole)),
		}
		if len(serveAPIKeys) > 0 {
			keys := make(map[string]string, len(serveAPIKeys))
			for _, k := range serveAPIKeys {
				keys[k] = "cli"
			}
			opts = append(opts, server.WithAPIKeys(keys))
		}

		srv := server.New(router, store, opts...)
		httpServer := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", cfg.ListenAddr).Int("products", store.Len()).Msg("http server listening")
			errCh <- httpServer.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case sig := <-stop:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringSliceVar(&serveAPIKeys, "api-key", nil, "accepted API keys (repeatable); empty leaves the API open")
	rootCmd.AddCommand(serveCmd)
}
