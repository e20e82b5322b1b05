// Set command writes one parameter from its text encoding and echoes the
// committed value back, proving the round trip.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/knobs/pkg/types"
)

func init() {
	// Values may begin with a minus sign; stop flag parsing at the first
	// positional so they are not read as flags.
	setCmd.Flags().SetInterspersed(false)
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a parameter from its text encoding",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "set:", err)
			os.Exit(exitSysError)
		}

		id, ok := resolveKey(store.Registry(), args[0])
		if !ok {
			os.Exit(exitUserError)
		}

		if err := store.SetText(id, args[1]); err != nil {
			switch {
			case errors.Is(err, types.ErrParse):
				fmt.Fprintf(os.Stderr, "%q does not parse for %s\n", args[1], args[0])
			case errors.Is(err, types.ErrOutOfRange):
				fmt.Fprintf(os.Stderr, "%q is outside the accepted domain of %s\n", args[1], args[0])
			default:
				fmt.Fprintln(os.Stderr, "set value:", err)
			}
			os.Exit(exitUserError)
		}

		if err := printParam(store, id); err != nil {
			fmt.Fprintln(os.Stderr, "format value:", err)
			os.Exit(exitSysError)
		}
		return nil
	},
}
