// Package output handles file naming and writing of rendered reports.
// Reports are named after the analyzed host (e.g. example.com_seo_report.pdf)
// and go to ~/Downloads when it exists, otherwise the working directory.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const fileSuffix = "_seo_report"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, DefaultDir is used.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		outputDir = dir
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// DefaultDir returns the user's Downloads folder if it exists, else the
// current working directory.
func DefaultDir() (string, error) {
	if home, err := os.UserHomeDir(); err == nil {
		downloads := filepath.Join(home, "Downloads")
		if fi, err := os.Stat(downloads); err == nil && fi.IsDir() {
			return downloads, nil
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

// Write stores data as <host>_seo_report<ext> and returns the path written.
// An existing report for the same host is overwritten.
func (w *Writer) Write(rawURL string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, FileName(rawURL, ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// FileName derives the report file name from the analyzed URL.
// Example: https://www.example.com:8080/docs → www.example.com_8080_seo_report.pdf
func FileName(rawURL, ext string) string {
	host := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Host != "" {
		host = parsed.Host
	}
	name := strings.Trim(sanitize(host), "_.")
	if name == "" {
		name = "page"
	}
	return name + fileSuffix + ext
}

// sanitize keeps letters, digits, dots and hyphens and replaces everything
// else with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
