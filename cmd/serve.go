// Package cmd — serve command.
// Runs the HTTP API until interrupted, then drains in-flight requests.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/seoaudit/core/analyze"
	"github.com/gaurav-prasanna/seoaudit/core/fetch"
	"github.com/gaurav-prasanna/seoaudit/server"
)

const shutdownTimeout = 15 * time.Second

var flagPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over HTTP",
	Long: `Serve exposes the analyzer as a JSON API:

  GET  /api/health
  POST /api/analyze  {"url": "https://example.com", "format": "json"}

Requests to /api/analyze are rate limited per client IP (env RATE_LIMIT_RPS,
RATE_LIMIT_BURST).`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagPort, "port", "", "Port to listen on (env PORT, default 8082)")
	serveCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Fetch timeout per analysis (env SEOAUDIT_TIMEOUT, default 10s)")
	serveCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "User-Agent header (env SEOAUDIT_USER_AGENT)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = flagPort
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("user-agent") {
		cfg.UserAgent = flagUserAgent
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	setupGinMode()

	fetcher := fetch.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithLogger(log),
	)
	analyzer, err := analyze.New(fetcher, analyze.WithLogger(log))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: net.JoinHostPort("", cfg.Port),
		Handler: server.New(analyzer, server.Options{
			Criteria:       analyzer.Rubric(),
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
			Logger:         log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-cmd.Context().Done():
	}

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// setupGinMode uses GIN_MODE when set and release mode otherwise.
func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}
