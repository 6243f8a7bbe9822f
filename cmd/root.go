// Package cmd implements the CLI commands for seoaudit using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/seoaudit/config"
)

// Persistent flag variables.
var (
	flagLogLevel  string
	flagLogFormat string
)

// Shared state prepared before any subcommand runs.
var (
	cfg config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seoaudit",
	Short: "seoaudit — on-page SEO analysis for a single URL",
	Long: `seoaudit fetches one web page, scores nine on-page SEO signals (title,
meta description, word count, links, image alt text, H1 headings, mobile
viewport, canonical tag and load time) and writes a report with prioritized
recommendations as PDF, Markdown, JSON or HTML.

Usage:
  seoaudit analyze <url> [flags]
  seoaudit serve [flags]`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error (env LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: text or json (env LOG_FORMAT)")
}

// setup reads configuration and builds the logger. Flags override the
// environment; commands that depend on the config validate it after applying
// their own flags.
func setup(cmd *cobra.Command, _ []string) error {
	cfg = config.Read()
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = flagLogFormat
	}
	log = config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	return nil
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's
// context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
