// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lattice-dev/lattice/internal/config"
	"github.com/lattice-dev/lattice/internal/project"
	"github.com/lattice-dev/lattice/internal/ui"
)

var (
	// Global flags
	rootFlag string // Explicit project root (rare)

	// Resolved values
	layout project.Layout
	cfg    *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Lattice - full-stack project scaffolding",
	Long: `Lattice scaffolds and maintains the code of a full-stack web project:
pages, components, and layouts on the web side, with a single route table
kept in sync as artifacts come and go.

Generators are symmetric: everything 'lattice generate' creates,
'lattice destroy' removes again, exactly.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip project resolution for commands that don't need one
		switch cmd.Name() {
		case "init", "version", "docs", "completion", "help":
			return nil
		}
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "docs") {
			return nil
		}

		var err error
		layout, cfg, err = project.Resolve(".", rootFlag)
		if err != nil {
			return fmt.Errorf("%w\n\nRun 'lattice init <path>' to create a project", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Explicit path to the project root")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getLayout returns the resolved project layout.
func getLayout() project.Layout {
	return layout
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}
