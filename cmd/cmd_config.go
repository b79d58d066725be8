package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"github.com/yhkl-dev/gospotify/config"
)

type InitConfigParams struct {
	Path  string `pos:"true" optional:"true" help:"Where to write the config (default: ~/.config/gospotify.toml)."`
	Print bool   `short:"p" optional:"true" help:"Print the default config instead of writing it." default:"false"`
}

func InitConfigCmd() *cobra.Command {
	return boa.CmdT[InitConfigParams]{
		Use:         "init-config",
		Short:       "Write a config file with the default settings",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *InitConfigParams, cmd *cobra.Command, args []string) {
			os.Exit(runInitConfig(params, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func runInitConfig(params *InitConfigParams, stdout, stderr io.Writer) int {
	cfg := config.DefaultConfig()

	if params.Print {
		data, err := config.Encode(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "init-config: %v\n", err)
			return 1
		}
		stdout.Write(data)
		return 0
	}

	path := params.Path
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			fmt.Fprintf(stderr, "init-config: %v\n", err)
			return 1
		}
	}
	if err := config.WriteFile(path, cfg); err != nil {
		fmt.Fprintf(stderr, "init-config: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "wrote %s\n", path)
	return 0
}
