// Get command reads one parameter by machine key.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a parameter value by key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "get:", err)
			os.Exit(exitSysError)
		}

		id, ok := resolveKey(store.Registry(), args[0])
		if !ok {
			os.Exit(exitUserError)
		}

		if err := printParam(store, id); err != nil {
			fmt.Fprintln(os.Stderr, "format value:", err)
			os.Exit(exitSysError)
		}
		return nil
	},
}
