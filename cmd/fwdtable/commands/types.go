package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the types show and family files accept",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := catalogNames()
		return render(cmd.OutOrStdout(), names, func(w io.Writer) error {
			for _, n := range names {
				fmt.Fprintf(w, "%-16s %v\n", n, catalog[n])
			}
			return nil
		})
	},
}
