// Check command parses and validates a candidate value without touching
// any store.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/knobs/pkg/params"
	"github.com/mesh-intelligence/knobs/pkg/types"
)

func init() {
	// Values may begin with a minus sign; stop flag parsing at the first
	// positional so they are not read as flags.
	checkCmd.Flags().SetInterspersed(false)
}

var checkCmd = &cobra.Command{
	Use:   "check <key> <value>",
	Short: "Check whether a value parses and validates for a parameter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := params.NewRegistry()
		if err != nil {
			fmt.Fprintln(os.Stderr, "build registry:", err)
			os.Exit(exitSysError)
		}

		id, ok := resolveKey(reg, args[0])
		if !ok {
			os.Exit(exitUserError)
		}
		h := reg.Handler(id)

		raw, err := h.ParseText(args[1])
		if err != nil {
			if errors.Is(err, types.ErrNotTextual) {
				fmt.Fprintf(os.Stderr, "%s has no text codec\n", args[0])
			} else {
				fmt.Fprintf(os.Stderr, "%q does not parse for %s\n", args[1], args[0])
			}
			os.Exit(exitUserError)
		}

		// Parse and validation are separate checks; report which one failed.
		if !h.ValidateRaw(raw) {
			fmt.Fprintf(os.Stderr, "%q parses but is outside the accepted domain of %s\n", args[1], args[0])
			os.Exit(exitUserError)
		}

		text, err := h.FormatRaw(raw)
		if err != nil {
			fmt.Fprintln(os.Stderr, "format value:", err)
			os.Exit(exitSysError)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %s = %s\n", args[0], text)
		return nil
	},
}
