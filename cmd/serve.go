package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ascentlearn/ascent/internal/api"
	"github.com/ascentlearn/ascent/internal/engine"
	"github.com/ascentlearn/ascent/internal/llm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// A local .env is a convenience for development; absence is fine.
		_ = godotenv.Load()

		addr, _ := cmd.Flags().GetString("addr")
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), s.EventRepo())
		if err != nil {
			return fmt.Errorf("configure provider: %w", err)
		}

		e := engine.FromStore(s, provider)
		srv := &http.Server{
			Addr:              addr,
			Handler:           api.NewServer(e, logger).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", "addr", addr)
			errCh <- srv.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case sig := <-stop:
			logger.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
}
