package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mart/internal/app"
	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/ui/style"
)

func (c *CLI) newMirrorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Resolve the inventory file and download every selected cookbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			dir, _ := cmd.Flags().GetString("dir")
			skip, _ := cmd.Flags().GetBool("skip-dependencies")
			jobs, _ := cmd.Flags().GetInt("jobs")

			report, err := c.app.Mirror(cmd.Context(), app.MirrorOptions{
				ConfigPath:       configPath,
				InventoryDir:     dir,
				SkipDependencies: skip,
				Parallelism:      jobs,
			})
			if err != nil {
				return err
			}

			r := renderer(cmd.OutOrStdout())
			done := r.NewStyle().Foreground(style.Green)
			cached := r.NewStyle().Foreground(style.Slate)
			out := cmd.OutOrStdout()

			for _, cb := range report.Downloaded {
				_, _ = fmt.Fprintf(out, "%s %s %s\n", done.Render(style.Check), cb.Name, cb.Version)
			}
			for _, cb := range report.Cached {
				_, _ = fmt.Fprintf(out, "%s %s %s %s\n", cached.Render(style.Dot), cb.Name, cb.Version, cached.Render("(cached)"))
			}
			_, _ = fmt.Fprintf(out, "%s\n", r.NewStyle().Bold(true).Render(fmt.Sprintf(
				"%d cookbooks resolved, %d downloaded, %d cached",
				len(report.Resolved), len(report.Downloaded), len(report.Cached),
			)))
			return nil
		},
	}
	cmd.Flags().StringP("dir", "d", domain.InventoryDirName, "Directory cookbooks are mirrored into")
	cmd.Flags().Bool("skip-dependencies", false, "Mirror only the listed cookbooks, not their dependencies")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum parallel downloads (defaults to the number of CPUs)")
	return cmd
}
