package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lattice-dev/lattice/internal/fsys"
	"github.com/lattice-dev/lattice/internal/ledger"
	"github.com/lattice-dev/lattice/internal/scaffold"
	"github.com/lattice-dev/lattice/internal/task"
	"github.com/lattice-dev/lattice/internal/templates"
	"github.com/lattice-dev/lattice/internal/ui"
)

var (
	generateTests   bool
	generateStories bool
	generatePath    string
	generateForce   bool
	generateDryRun  bool
	generateSilent  bool
)

var generateCmd = &cobra.Command{
	Use:     "generate <type> <name>",
	Aliases: []string{"g"},
	Short:   "Generate a page, component, or layout",
	Long: `Generate web-side code from templates.

The name is normalized to PascalCase and suffixed by kind, so
'lattice generate page about' creates pages/AboutPage/AboutPage.jsx.
Pages also get a route line in the route table.

Examples:
  lattice generate page About
  lattice g page Contact --path /get-in-touch
  lattice g component NavBar --tests=false
  lattice g layout Admin --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0], args[1])
	},
}

func runGenerate(cmd *cobra.Command, kindArg, name string) error {
	kind, err := scaffold.ParseKind(kindArg)
	if err != nil {
		return handleError(ErrGeneratorUnknown, err, fmt.Sprintf("Expected one of: %s", strings.Join(scaffold.Kinds(), ", ")))
	}

	target, err := scaffold.NewTarget(kind, name, generateOptions(cmd))
	if err != nil {
		return handleError(ErrNameInvalid, err, "Names must start with a letter and contain only letters, digits, '-' or '_'")
	}

	l := getLayout()
	fs := fsys.OS()

	source, err := templates.NewSource(fs, l.TemplatesDir())
	if err != nil {
		return handleError(ErrTemplateError, err, "Check templates/generators.yaml")
	}

	set, err := scaffold.Render(target, source)
	if err != nil {
		return handleError(ErrTemplateError, err, "")
	}

	relPaths := make([]string, 0, set.Len())
	for _, p := range set.Paths() {
		relPaths = append(relPaths, scaffold.WebRel(l, p))
	}

	if !generateForce {
		var existing []string
		for _, rel := range relPaths {
			if fs.Exists(l.Abs(rel)) {
				existing = append(existing, rel)
			}
		}
		if len(existing) > 0 {
			return handleErrorMsg(ErrFileExists,
				fmt.Sprintf("already exists: %s", strings.Join(existing, ", ")),
				"Re-run with --force to overwrite")
		}
	}

	tasks := scaffold.GeneratePlan(target, set, l)

	if generateDryRun {
		return outputDryRun(tasks)
	}

	runner := task.NewRunner(fs, taskRenderer(generateSilent))
	if _, err := runner.Run(tasks); err != nil {
		return handleError(ErrTaskFailed, err, "")
	}

	var warnings []Warning
	rec := ledger.Record{
		Kind:      string(kind),
		Name:      target.Title(),
		Files:     relPaths,
		CreatedAt: time.Now(),
	}
	if kind == scaffold.KindPage {
		rec.RoutePath = target.RoutePath()
	}
	if err := recordGenerate(l.LatticeDir(), rec); err != nil {
		warnings = append(warnings, Warning{
			Code:    WarnLedgerUpdateFailed,
			Message: fmt.Sprintf("generated files were not recorded: %v", err),
		})
	}

	if isJSONOutput() {
		data := map[string]interface{}{
			"kind":  string(kind),
			"name":  target.ArtifactName(),
			"files": relPaths,
		}
		if kind == scaffold.KindPage {
			data["route_path"] = target.RoutePath()
			data["route_name"] = target.RouteName()
		}
		outputSuccessWithWarnings(data, warnings, &Meta{Count: len(relPaths)})
		return nil
	}

	if !generateSilent {
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, ui.Warning(w.Message))
		}
		if kind == scaffold.KindPage {
			fmt.Printf("\n%s is live at %s\n", target.ArtifactName(), ui.RoutePath(target.RoutePath()))
		}
	}
	return nil
}

// generateOptions derives target options from config defaults, letting
// explicitly set flags win.
func generateOptions(cmd *cobra.Command) scaffold.Options {
	c := getConfig()
	opts := scaffold.Options{
		IncludeTests:   c.TestsDefault(),
		IncludeStories: c.StoriesDefault(),
		RoutePath:      generatePath,
	}
	if cmd.Flags().Changed("tests") {
		opts.IncludeTests = generateTests
	}
	if cmd.Flags().Changed("stories") {
		opts.IncludeStories = generateStories
	}
	return opts
}

func recordGenerate(latticeDir string, rec ledger.Record) error {
	led, err := ledger.Open(latticeDir)
	if err != nil {
		return err
	}
	defer led.Close()
	return led.Put(rec)
}

// taskRenderer picks progress rendering: silent for scripts, JSON mode,
// and pipes; per-task checkmarks on a terminal.
func taskRenderer(silent bool) task.Renderer {
	if silent || isJSONOutput() || !ui.StdoutIsTerminal() {
		return task.Silent{}
	}
	return task.NewConsole(os.Stdout)
}

// outputDryRun prints the task list without running it.
func outputDryRun(tasks []task.Task) error {
	if isJSONOutput() {
		items := make([]map[string]string, 0, len(tasks))
		for _, t := range tasks {
			items = append(items, map[string]string{
				"title": t.Title,
				"op":    string(t.Op.Type),
			})
		}
		outputSuccess(map[string]interface{}{"dry_run": true, "tasks": items}, &Meta{Count: len(items)})
		return nil
	}

	fmt.Println(ui.Header("Dry run, no files changed:"))
	for _, t := range tasks {
		fmt.Printf("  %s %s\n", ui.SymbolInfo, t.Title)
	}
	return nil
}

func init() {
	generateCmd.Flags().BoolVar(&generateTests, "tests", true, "Generate a test file alongside the component")
	generateCmd.Flags().BoolVar(&generateStories, "stories", true, "Generate a stories file alongside the component")
	generateCmd.Flags().StringVar(&generatePath, "path", "", "Custom route path (pages only)")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Overwrite existing files")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Print the task list without touching any files")
	generateCmd.Flags().BoolVar(&generateSilent, "silent", false, "Suppress progress output")

	rootCmd.AddCommand(generateCmd)
}
