package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lattice-dev/lattice/internal/fsys"
	"github.com/lattice-dev/lattice/internal/ledger"
	"github.com/lattice-dev/lattice/internal/routes"
	"github.com/lattice-dev/lattice/internal/scaffold"
	"github.com/lattice-dev/lattice/internal/task"
	"github.com/lattice-dev/lattice/internal/ui"
)

var (
	destroyTests   bool
	destroyStories bool
	destroyPath    string
	destroyForce   bool
	destroyDryRun  bool
	destroySilent  bool
)

var destroyCmd = &cobra.Command{
	Use:     "destroy <type> <name>",
	Aliases: []string{"d"},
	Short:   "Destroy a previously generated page, component, or layout",
	Long: `Remove exactly the files a previous generate produced.

When the generate run was recorded in the ledger, the recorded file list
is removed. Otherwise the file set is derived from the current naming
conventions, so a destroy mirrors the generate it undoes. Pages also lose
their route line.

Examples:
  lattice destroy page About
  lattice d component NavBar
  lattice d page Contact --path /get-in-touch`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDestroy(cmd, args[0], args[1])
	},
}

func runDestroy(cmd *cobra.Command, kindArg, name string) error {
	kind, err := scaffold.ParseKind(kindArg)
	if err != nil {
		return handleError(ErrGeneratorUnknown, err, fmt.Sprintf("Expected one of: %s", strings.Join(scaffold.Kinds(), ", ")))
	}

	opts := destroyOptions(cmd)
	target, err := scaffold.NewTarget(kind, name, opts)
	if err != nil {
		return handleError(ErrNameInvalid, err, "")
	}

	l := getLayout()
	fs := fsys.OS()

	var warnings []Warning
	rec, recErr := lookupRecord(l.LatticeDir(), string(kind), target.Title())
	if recErr != nil && !errors.Is(recErr, ledger.ErrNotFound) {
		warnings = append(warnings, Warning{
			Code:    WarnLedgerUpdateFailed,
			Message: fmt.Sprintf("could not read ledger: %v", recErr),
		})
	}

	var relPaths []string
	switch {
	case rec != nil:
		relPaths = rec.Files
		// A recorded custom route path wins over the conventional one so
		// the route line is matched the same way generate inserted it.
		if kind == scaffold.KindPage && opts.RoutePath == "" && rec.RoutePath != "" && rec.RoutePath != target.RoutePath() {
			opts.RoutePath = rec.RoutePath
			target, err = scaffold.NewTarget(kind, name, opts)
			if err != nil {
				return handleError(ErrNameInvalid, err, "")
			}
		}
	default:
		if errors.Is(recErr, ledger.ErrNotFound) {
			warnings = append(warnings, Warning{
				Code:    WarnNoLedgerRecord,
				Message: "no ledger record, falling back to naming conventions",
			})
		}
		for _, p := range target.Paths() {
			rel := scaffold.WebRel(l, p)
			if fs.Exists(l.Abs(rel)) {
				relPaths = append(relPaths, rel)
			}
		}
	}

	if len(relPaths) == 0 && !targetHasRoute(fs, l.RoutesFile, target) {
		return handleErrorMsg(ErrNothingToDestroy,
			fmt.Sprintf("nothing to destroy for %s %s", kind, target.ArtifactName()),
			"Run 'lattice ledger' to list recorded artifacts")
	}

	tasks := scaffold.DestroyPlan(target, relPaths, l)

	if destroyDryRun {
		return outputDryRun(tasks)
	}

	if !destroyForce && shouldPromptForConfirm() {
		prompt := fmt.Sprintf("Destroy %s %s %s?", kind, target.ArtifactName(), ui.Count(len(relPaths), "file", "files"))
		if !promptForConfirm(prompt) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	runner := task.NewRunner(fs, taskRenderer(destroySilent))
	results, runErr := runner.Run(tasks)

	deleted := 0
	deleteFailed := false
	for _, r := range results {
		if r.Task.Op.Type == task.OpRemoveRoute && r.Err == nil && r.Note != "" {
			warnings = append(warnings, Warning{
				Code:    WarnRouteNotFound,
				Message: fmt.Sprintf("no route line matched %s", target.RoutePath()),
			})
		}
		if r.Task.Op.Type != task.OpDeleteFile {
			continue
		}
		if r.Err != nil {
			deleteFailed = true
			continue
		}
		deleted++
	}

	if rec == nil && deleted != len(target.Paths()) {
		warnings = append(warnings, Warning{
			Code:    WarnCountMismatch,
			Message: fmt.Sprintf("removed %d of %d conventional files", deleted, len(target.Paths())),
		})
	}

	if rec != nil && !deleteFailed {
		if err := deleteRecord(l.LatticeDir(), string(kind), target.Title()); err != nil {
			warnings = append(warnings, Warning{
				Code:    WarnLedgerUpdateFailed,
				Message: fmt.Sprintf("destroyed files but could not drop the ledger record: %v", err),
			})
		}
	}

	if runErr != nil {
		return handleError(ErrTaskFailed, runErr, "")
	}

	if isJSONOutput() {
		data := map[string]interface{}{
			"kind":    string(kind),
			"name":    target.ArtifactName(),
			"files":   relPaths,
			"deleted": deleted,
		}
		if kind == scaffold.KindPage {
			data["route_path"] = target.RoutePath()
		}
		outputSuccessWithWarnings(data, warnings, &Meta{Count: deleted})
		return nil
	}

	if !destroySilent && !ui.StdoutIsTerminal() {
		// The console renderer already narrated each task on a TTY.
		fmt.Println(ui.Successf("Destroyed %s %s %s", kind, target.ArtifactName(), ui.Count(deleted, "file", "files")))
	}
	return nil
}

func destroyOptions(cmd *cobra.Command) scaffold.Options {
	c := getConfig()
	opts := scaffold.Options{
		IncludeTests:   c.TestsDefault(),
		IncludeStories: c.StoriesDefault(),
		RoutePath:      destroyPath,
	}
	if cmd.Flags().Changed("tests") {
		opts.IncludeTests = destroyTests
	}
	if cmd.Flags().Changed("stories") {
		opts.IncludeStories = destroyStories
	}
	return opts
}

// lookupRecord reads a ledger record without creating the ledger: a lookup
// (or a --dry-run) must not leave an empty database behind.
func lookupRecord(latticeDir, kind, name string) (*ledger.Record, error) {
	if _, err := os.Stat(filepath.Join(latticeDir, ledger.FileName)); err != nil {
		return nil, ledger.ErrNotFound
	}
	led, err := ledger.Open(latticeDir)
	if err != nil {
		return nil, err
	}
	defer led.Close()
	return led.Get(kind, name)
}

func deleteRecord(latticeDir, kind, name string) error {
	led, err := ledger.Open(latticeDir)
	if err != nil {
		return err
	}
	defer led.Close()
	return led.Delete(kind, name)
}

// targetHasRoute reports whether the route table still has a line for the
// page target. Non-page targets never do.
func targetHasRoute(fs fsys.FS, routesFile string, t scaffold.Target) bool {
	if t.Kind() != scaffold.KindPage {
		return false
	}
	data, err := fs.ReadFile(routesFile)
	if err != nil {
		return false
	}
	for _, e := range routes.Parse(string(data)) {
		if e.NotFound {
			continue
		}
		if e.Path == t.RoutePath() || e.Name == t.RouteName() {
			return true
		}
	}
	return false
}

func init() {
	destroyCmd.Flags().BoolVar(&destroyTests, "tests", true, "Include the test file in the conventional file set")
	destroyCmd.Flags().BoolVar(&destroyStories, "stories", true, "Include the stories file in the conventional file set")
	destroyCmd.Flags().StringVar(&destroyPath, "path", "", "Custom route path to match (pages only)")
	destroyCmd.Flags().BoolVar(&destroyForce, "force", false, "Skip the confirmation prompt")
	destroyCmd.Flags().BoolVar(&destroyDryRun, "dry-run", false, "Print the task list without touching any files")
	destroyCmd.Flags().BoolVar(&destroySilent, "silent", false, "Suppress progress output")

	rootCmd.AddCommand(destroyCmd)
}
