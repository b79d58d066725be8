package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"github.com/yhkl-dev/gospotify/config"
	"github.com/yhkl-dev/gospotify/ui"
)

type BrowseParams struct {
	Query   string `pos:"true" optional:"true" help:"Search to run on start."`
	Config  string `short:"c" optional:"true" help:"Path to a config file (default: gospotify.toml in ~/.config or .)."`
	Verbose bool   `short:"v" optional:"true" help:"Log debug output (needs log.file to be set)." default:"false"`
}

func BrowseCmd() *cobra.Command {
	return boa.CmdT[BrowseParams]{
		Use:         "browse",
		Short:       "Browse search results in an interactive terminal UI",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *BrowseParams, cmd *cobra.Command, args []string) {
			os.Exit(runBrowse(params, os.Stderr))
		},
	}.ToCobra()
}

func runBrowse(params *BrowseParams, stderr io.Writer) int {
	loader := config.NewLoader(params.Config)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(stderr, "browse: %v\n", err)
		return 1
	}

	// The terminal belongs to the UI; only log when there is a file to log to.
	closeLog, err := setupLogging(cfg.Log, params.Verbose, io.Discard)
	if err != nil {
		fmt.Fprintf(stderr, "browse: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "browse: %v\n", err)
		return 1
	}
	defer b.Close()

	loader.Watch(b.applyConfig)
	if f := loader.File(); f != "" {
		slog.Info("watching config file", "file", f)
	}

	app := ui.NewApp(ctx, cfg, b.library)
	if err := app.Run(params.Query); err != nil {
		fmt.Fprintf(stderr, "browse: %v\n", err)
		return 1
	}
	return 0
}
