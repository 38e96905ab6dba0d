// Package commands implements the CLI commands for mart.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/mart/internal/app"
	"go.trai.ch/mart/internal/build"
	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/ui/output"
)

// CLI represents the command line interface for mart.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	jsonLogs func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, opts app.ResolveOptions) ([]domain.ResolvedRequirement, error)
	Mirror(ctx context.Context, opts app.MirrorOptions) (domain.MirrorReport, error)
	List(dir string) ([]domain.InventoryEntry, error)
	Clean(ctx context.Context) error
}

// Option configures a CLI.
type Option func(*CLI)

// WithJSONLogs registers the hook invoked with the value of --json-logs before any command runs.
func WithJSONLogs(fn func(bool)) Option {
	return func(c *CLI) {
		c.jsonLogs = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mart",
		Short:         "Mirror Chef cookbooks and their dependencies into a local inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.InventoryFileName, "Path to the inventory file")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.jsonLogs == nil {
			return
		}
		enabled, _ := cmd.Flags().GetBool("json-logs")
		c.jsonLogs(enabled)
	}

	rootCmd.AddCommand(c.newMirrorCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func renderer(w io.Writer) *lipgloss.Renderer {
	return lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfile()))
}
