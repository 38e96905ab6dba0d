package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mart/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the cookbook versions the inventory file resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			skip, _ := cmd.Flags().GetBool("skip-dependencies")

			resolved, err := c.app.Resolve(cmd.Context(), app.ResolveOptions{
				ConfigPath:       configPath,
				SkipDependencies: skip,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading := renderer(out).NewStyle().Bold(true)
			_, _ = fmt.Fprintln(out, heading.Render(fmt.Sprintf("Resolved %d cookbooks", len(resolved))))
			for _, r := range resolved {
				_, _ = fmt.Fprintf(out, "%s %s\n", r.Name, r.Version)
			}
			return nil
		},
	}
	cmd.Flags().Bool("skip-dependencies", false, "Resolve only the listed cookbooks, not their dependencies")
	return cmd
}
