// Init command writes the default configuration file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/knobs/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default panel configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "resolve config dir:", err)
			os.Exit(exitSysError)
		}

		path, err := writeDefaultConfig(configDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "write config:", err)
			os.Exit(exitSysError)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "config: %s\n", path)
		return nil
	},
}
