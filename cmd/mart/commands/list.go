package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/mart/internal/core/domain"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cookbooks in the inventory directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			entries, err := c.app.List(dir)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Version, e.Source)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringP("dir", "d", domain.InventoryDirName, "Inventory directory")
	return cmd
}
