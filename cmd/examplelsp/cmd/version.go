package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the examplelsp version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("examplelsp " + version)
		return nil
	},
}
