// Package regions provides the command listing known Genesys Cloud regions.
package regions

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brentdalling/gcenv/internal/regions"
)

// RegionsCmd is the cobra command for listing regions.
var RegionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List known Genesys Cloud regions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRegions(cmd.OutOrStdout(), regions.List())
	},
}

func printRegions(out io.Writer, list []regions.Region) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tAPI BASE PATH")
	for _, r := range list {
		fmt.Fprintf(w, "%s\t%s\n", r.Name, r.BasePath())
	}
	return w.Flush()
}
