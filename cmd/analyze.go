// Package cmd — analyze command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → evaluate → recommend → render → write.
//
// It handles flag validation, renderer selection and the interactive URL
// prompt.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/seoaudit/core"
	"github.com/gaurav-prasanna/seoaudit/core/analyze"
	"github.com/gaurav-prasanna/seoaudit/core/fetch"
	"github.com/gaurav-prasanna/seoaudit/core/output"
	"github.com/gaurav-prasanna/seoaudit/core/render"
)

// Flag variables.
var (
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagHTML      bool
	flagFormat    string
	flagOutputDir string
	flagTimeout   time.Duration
	flagUserAgent string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [url]",
	Short: "Analyze a URL and write an SEO report",
	Long: `Analyze fetches a web page, scores its on-page SEO signals and writes a
report with prioritized recommendations. Without a URL argument it prompts for
one on stdin.

The report is written to ~/Downloads when that folder exists, otherwise to the
current directory, as <host>_seo_report.<ext>.

Examples:
  seoaudit analyze https://example.com
  seoaudit analyze example.com --markdown
  seoaudit analyze https://example.com --format json --output-dir ./out
  seoaudit analyze https://example.com --timeout 30s --user-agent "MyBot/1.0"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output format flags (mutually exclusive).
	analyzeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	analyzeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	analyzeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output JSON")
	analyzeCmd.Flags().BoolVar(&flagHTML, "html", false, "Output HTML")
	analyzeCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: pdf, markdown, json or html (env SEOAUDIT_FORMAT, default pdf)")
	analyzeCmd.MarkFlagsMutuallyExclusive("pdf", "markdown", "json", "html", "format")

	analyzeCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Output directory (env SEOAUDIT_OUTPUT_DIR, default ~/Downloads or current directory)")
	analyzeCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Fetch timeout (env SEOAUDIT_TIMEOUT, default 10s)")
	analyzeCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "User-Agent header (env SEOAUDIT_USER_AGENT)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rawURL := ""
	if len(args) == 1 {
		rawURL = args[0]
	} else {
		var err error
		if rawURL, err = promptURL(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("a URL is required")
	}

	applyAnalyzeFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	fetcher := fetch.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithLogger(log),
	)
	analyzer, err := analyze.New(fetcher, analyze.WithLogger(log))
	if err != nil {
		return err
	}
	renderer, err := render.New(format, analyzer.Rubric())
	if err != nil {
		return err
	}
	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	report, err := analyzer.Run(cmd.Context(), rawURL)
	if err != nil {
		if core.IsFetchFailure(err) {
			return fmt.Errorf("could not retrieve page: %w", err)
		}
		return err
	}

	data, err := renderer.Render(report)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	path, err := writer.Write(report.URL, data, renderer.Extension())
	if err != nil {
		return err
	}

	tally := report.Tally()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d good, %d warning, %d critical; %d recommendations\n",
		tally.Good, tally.Warning, tally.Critical, len(report.Recommendations))
	fmt.Fprintf(out, "Analysis completed. Report written to %s\n", path)
	return nil
}

// applyAnalyzeFlags lets explicitly set flags override the loaded config.
func applyAnalyzeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	switch {
	case flagPDF:
		cfg.Format = string(render.FormatPDF)
	case flagMarkdown:
		cfg.Format = string(render.FormatMarkdown)
	case flagJSON:
		cfg.Format = string(render.FormatJSON)
	case flagHTML:
		cfg.Format = string(render.FormatHTML)
	case flags.Changed("format"):
		cfg.Format = strings.ToLower(flagFormat)
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = flagOutputDir
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("user-agent") {
		cfg.UserAgent = flagUserAgent
	}
}

// promptURL asks for a URL on in and returns the first line entered.
func promptURL(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the URL to analyze: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading URL: %w", err)
	}
	return strings.TrimSpace(line), nil
}
