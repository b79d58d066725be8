package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"
	"github.com/yhkl-dev/gospotify/cmd"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "gospotify",
		Short:   "Search and browse a music catalog through the native session",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			cmd.SearchCmd(),
			cmd.BrowseCmd(),
			cmd.InitConfigCmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}

	version := bi.Main.Version
	if version == "" {
		version = "unknown-(no version)"
	}
	return version
}
