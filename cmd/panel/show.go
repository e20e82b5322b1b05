// Show command prints every parameter with its current (default) value.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all parameters and their values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}

		for _, id := range store.Registry().IDs() {
			if err := printParam(store, id); err != nil {
				fmt.Fprintln(os.Stderr, "format value:", err)
				os.Exit(exitSysError)
			}
		}
		return nil
	},
}
