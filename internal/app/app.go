package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/five82/hansard/internal/config"
	"github.com/five82/hansard/internal/nav"
	"github.com/five82/hansard/internal/parliament"
	"github.com/five82/hansard/internal/prefs"
	"github.com/five82/hansard/internal/state"
	"github.com/five82/hansard/internal/ui"
)

// Options configure the hansard application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/hansard/prefs.toml
	Open       string        // initial location, e.g. "/mp/4821/"; empty resumes
	StatsEvery time.Duration // zero uses the config value
}

// Run boots the hansard TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := initLogging(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		log.Printf("load prefs: %v", err)
	}

	client, err := parliament.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	interval := cfg.StatsEvery
	if opts.StatsEvery > 0 {
		interval = opts.StatsEvery
	}

	pollCtx, stopPoller := context.WithCancel(ctx)
	done := StartPoller(pollCtx, store, client, interval)
	defer func() {
		stopPoller()
		<-done
	}()

	start := startLocation(opts.Open, userPrefs.LastLocation)
	log.Printf("starting at %s against %s", start, client.BaseURL())

	return ui.Run(ui.Options{
		Context:   ctx,
		Loader:    client,
		Store:     store,
		Start:     start,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
		APIBase:   client.BaseURL(),
	})
}

// startLocation picks the explicit --open location, then the remembered
// one, then Home.
func startLocation(open, remembered string) nav.Location {
	for _, raw := range []string{open, remembered} {
		if strings.TrimSpace(raw) != "" {
			return nav.ParseLocation(raw)
		}
	}
	return nav.Location{Path: "/"}
}
