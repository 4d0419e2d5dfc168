package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/hansard/internal/app"
	"github.com/five82/hansard/internal/fixture"
	"github.com/five82/hansard/internal/logtail"
)

// Version is set at build time.
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "hansard: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		prefsPath  string
		open       string
		statsEvery time.Duration
	)

	root := &cobra.Command{
		Use:   "hansard",
		Short: "Explore the declared financial interests of UK MPs",
		Long: `hansard is a terminal client for an MP financial-interests API.

Search by postcode, constituency or name, then browse the MP's declared
interests grouped by sector.

Examples:
  hansard                       # resume where you left off
  hansard --open /mp/4821/      # open a profile directly
  hansard lookup "Bath"         # print a profile without the TUI
  hansard logs --request <id>   # show log lines for one request
  hansard demo                  # serve the bundled demo API`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
				Open:       open,
				StatsEvery: statsEvery,
			})
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/hansard/config.toml)")
	root.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/hansard/prefs.toml)")
	root.Flags().StringVar(&open, "open", "", "initial location, e.g. /research/ or /mp/4821/")
	root.Flags().DurationVar(&statsEvery, "stats-every", 0, "statistics refresh interval (default from config, 60s)")

	root.AddCommand(newLookupCmd(&configPath), newLogsCmd(&configPath), newDemoCmd())
	return root
}

func newLookupCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <query>",
		Short: "Search for an MP and print their interests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunLookup(cmd.Context(), *configPath, args[0], cmd.OutOrStdout())
		},
	}
}

func newLogsCmd(configPath *string) *cobra.Command {
	var opts logtail.Options

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the newest lines of the hansard log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.PrintLogs(*configPath, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&opts.MaxLines, "lines", "n", 50, "number of lines to show (0 for all)")
	cmd.Flags().StringVar(&opts.Contains, "request", "", "only show lines for this request id")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Serve the bundled demo API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := fixture.DefaultDataset()
			if err != nil {
				return err
			}
			log.SetOutput(cmd.ErrOrStderr())
			log.Printf("demo API listening on http://%s", addr)
			return fixture.Serve(cmd.Context(), addr, data)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8000", "listen address")
	return cmd
}
