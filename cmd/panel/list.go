// List command prints the registered parameter catalog.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/knobs/pkg/params"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered parameters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := params.NewRegistry()
		if err != nil {
			fmt.Fprintln(os.Stderr, "build registry:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			catalog := make([]paramOutput, 0, reg.Len())
			for _, id := range reg.IDs() {
				h := reg.Handler(id)
				catalog = append(catalog, paramOutput{
					Key:     h.Key(),
					Name:    h.Name(),
					Size:    h.Size(),
					Storage: h.Storage().String(),
				})
			}
			out, err := json.MarshalIndent(catalog, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tKEY\tNAME\tSIZE\tSTORAGE")
		for _, id := range reg.IDs() {
			h := reg.Handler(id)
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", id, h.Key(), h.Name(), h.Size(), h.Storage())
		}
		return w.Flush()
	},
}
