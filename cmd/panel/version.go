// Version command for the panel CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/knobs/pkg/knobs"
)

const modulePath = "github.com/mesh-intelligence/knobs"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the panel version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "panel v%s\nmodule: %s\n", knobs.Version, modulePath)
		return nil
	},
}
