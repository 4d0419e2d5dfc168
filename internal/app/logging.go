package app

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hansard/internal/config"
	"github.com/five82/hansard/internal/logtail"
)

// initLogging sends the standard logger to the configured file while the
// TUI owns the terminal. The caller closes the returned file.
func initLogging(cfg config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir(), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(cfg.LogFile, "hansard")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// PrintLogs writes the newest lines of the configured log file to w.
func PrintLogs(configPath string, opts logtail.Options, w io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	lines, err := logtail.Tail(cfg.LogFile, opts)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintf(w, "no log entries in %s\n", cfg.LogFile)
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
