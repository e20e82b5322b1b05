// Root command for the panel CLI.
package main

import (
	"github.com/mesh-intelligence/knobs/pkg/knobs"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagJSON      bool
)

var rootCmd = &cobra.Command{
	Use:   "panel",
	Short: "Panel is a front panel for typed device parameters",
	Long: `Panel exposes the built-in device parameter catalog: list the
registered parameters, inspect defaults, and set or read values through
their text encodings. Values live in a volatile in-memory store.`,
	Version: knobs.Version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(checkCmd)
}
