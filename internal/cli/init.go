package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lattice-dev/lattice/internal/config"
	"github.com/lattice-dev/lattice/internal/fsys"
	"github.com/lattice-dev/lattice/internal/project"
	"github.com/lattice-dev/lattice/internal/scaffold"
	"github.com/lattice-dev/lattice/internal/task"
	"github.com/lattice-dev/lattice/internal/templates"
	"github.com/lattice-dev/lattice/internal/ui"
)

// defaultRoutes is the route table a fresh project starts with.
const defaultRoutes = `import { Router, Route } from '@lattice/router'

const Routes = () => {
  return (
    <Router>
      <Route path="/" page={HomePage} name="home" />
      <Route notfound page={NotFoundPage} />
    </Router>
  )
}

export default Routes
`

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Initialize a new project",
	Long: `Creates a new project at the specified path with default configuration.

Creates:
  - lattice.toml      (project configuration)
  - web/src/          (pages, components, layouts, Routes.jsx)
  - api/src/          (api side)
  - .lattice/         (artifact ledger)
  - .gitignore        (ignores derived files)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		fmt.Printf("Initializing project at: %s\n", path)

		absRoot, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		l := project.NewLayout(absRoot, nil)
		fs := fsys.OS()

		for _, dir := range []string{
			l.PagesDir(),
			l.ComponentsDir(),
			l.LayoutsDir(),
			l.APISrc,
			l.LatticeDir(),
		} {
			if err := fs.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", l.Rel(dir), err)
			}
		}

		createdConfig, err := config.CreateDefault(absRoot)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", config.FileName, err)
		}

		gitignoreStatus, err := ensureGitignore(absRoot)
		if err != nil {
			return err
		}

		tasks := initialScaffoldTasks(fs, l)
		runner := task.NewRunner(fs, task.Silent{})
		if _, err := runner.Run(tasks); err != nil {
			return fmt.Errorf("failed to scaffold starter files: %w", err)
		}

		// Report what was done
		if createdConfig {
			fmt.Println(ui.Success("Created lattice.toml (project configuration)"))
		} else {
			fmt.Println(ui.Info("lattice.toml already exists (kept)"))
		}

		if len(tasks) > 0 {
			fmt.Println(ui.Successf("Scaffolded web/src %s", ui.Count(len(tasks), "file", "files")))
		} else {
			fmt.Println(ui.Info("web/src already scaffolded (kept)"))
		}

		fmt.Println(ui.Success("Ensured .lattice/ and api/src/ directories exist"))

		switch gitignoreStatus {
		case "created":
			fmt.Println(ui.Success("Created .gitignore"))
		case "updated":
			fmt.Println(ui.Success("Updated .gitignore (added lattice entries)"))
		default:
			fmt.Println(ui.Info(".gitignore already has lattice entries"))
		}

		if createdConfig {
			fmt.Println("\nProject initialized! Run 'lattice generate page <Name>' to add a page.")
		} else {
			fmt.Println("\nExisting project detected. Configuration preserved.")
		}

		return nil
	},
}

// initialScaffoldTasks builds write tasks for the starter files a fresh
// project needs: the route table plus the two pages it references.
// Files that already exist are left alone.
func initialScaffoldTasks(fs fsys.FS, l project.Layout) []task.Task {
	var tasks []task.Task

	if !fs.Exists(l.RoutesFile) {
		tasks = append(tasks, task.Task{
			Title: "Writing " + l.Rel(l.RoutesFile),
			Op: task.Op{
				Type:    task.OpWriteFile,
				Path:    l.RoutesFile,
				Content: defaultRoutes,
			},
		})
	}

	source := templates.Builtin()
	starterOpts := map[string]scaffold.Options{
		"Home":     {RoutePath: "/"},
		"NotFound": {},
	}
	for _, name := range []string{"Home", "NotFound"} {
		target, err := scaffold.NewTarget(scaffold.KindPage, name, starterOpts[name])
		if err != nil {
			continue
		}
		set, err := scaffold.Render(target, source)
		if err != nil {
			continue
		}
		for _, p := range set.Paths() {
			rel := scaffold.WebRel(l, p)
			if fs.Exists(l.Abs(rel)) {
				continue
			}
			content, _ := set.Content(p)
			tasks = append(tasks, task.Task{
				Title: "Writing " + rel,
				Op: task.Op{
					Type:    task.OpWriteFile,
					Path:    l.Abs(rel),
					Content: content,
				},
			})
		}
	}

	return tasks
}

// ensureGitignore adds the derived-file entries to .gitignore, creating it
// when missing. Returns "created", "updated", or "kept".
func ensureGitignore(root string) (string, error) {
	gitignorePath := filepath.Join(root, ".gitignore")
	entries := []string{".lattice/"}

	existing := ""
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = string(data)
	}

	var missing []string
	for _, entry := range entries {
		if !strings.Contains(existing, entry) {
			missing = append(missing, entry)
		}
	}

	if len(missing) == 0 {
		if existing != "" {
			return "kept", nil
		}
	}

	var newContent string
	status := "updated"
	if existing == "" {
		status = "created"
		newContent = `# Lattice (auto-generated)
# Derived files; the source tree is the source of truth

# Artifact ledger
.lattice/
`
	} else {
		addition := "\n# Lattice\n"
		for _, entry := range missing {
			addition += entry + "\n"
		}
		newContent = strings.TrimRight(existing, "\n") + "\n" + addition
	}
	if err := os.WriteFile(gitignorePath, []byte(newContent), 0644); err != nil {
		return "", fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return status, nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
