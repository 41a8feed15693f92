package cli

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/lattice-dev/lattice/internal/project"
)

// resetCLIState returns flags and resolved globals to their defaults so
// tests can execute the command tree repeatedly in one process.
func resetCLIState() {
	rootFlag = ""
	jsonOutput = false
	layout = project.Layout{}
	cfg = nil

	resetFlagSet(rootCmd.PersistentFlags())
	resetFlagSet(generateCmd.Flags())
	resetFlagSet(destroyCmd.Flags())
}

func resetFlagSet(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// runCLI executes the command tree as a user would, pointing it at the
// given project root.
func runCLI(t *testing.T, projectRoot string, args ...string) error {
	t.Helper()
	resetCLIState()

	full := append([]string{}, args...)
	if projectRoot != "" {
		full = append(full, "--root", projectRoot)
	}
	rootCmd.SetArgs(full)
	return rootCmd.Execute()
}
