package scaffold

import (
	"path/filepath"

	"github.com/lattice-dev/lattice/internal/project"
	"github.com/lattice-dev/lattice/internal/routes"
	"github.com/lattice-dev/lattice/internal/task"
)

// WebRel converts a web-src-relative path (as produced by Target.Files) to a
// project-root-relative one, e.g. "pages/AboutPage/AboutPage.jsx" ->
// "web/src/pages/AboutPage/AboutPage.jsx".
func WebRel(l project.Layout, webPath string) string {
	return l.Rel(filepath.Join(l.WebSrc, filepath.FromSlash(webPath)))
}

// GeneratePlan builds the ordered task list that materializes a rendered
// file set: one write per file, then (for pages) the route insert.
func GeneratePlan(t Target, set *FileSet, l project.Layout) []task.Task {
	var tasks []task.Task

	for _, p := range set.Paths() {
		content, _ := set.Content(p)
		rel := WebRel(l, p)
		tasks = append(tasks, task.Task{
			Title: "Writing " + rel,
			Op: task.Op{
				Type:    task.OpWriteFile,
				Path:    l.Abs(rel),
				Content: content,
			},
		})
	}

	if t.Kind() == KindPage {
		tasks = append(tasks, task.Task{
			Title: "Updating " + l.Rel(l.RoutesFile),
			Op: task.Op{
				Type: task.OpInsertRoute,
				Path: l.RoutesFile,
				Route: task.RouteSpec{
					Path: t.RoutePath(),
					Page: t.ArtifactName(),
					Name: t.RouteName(),
				},
			},
		})
	}

	return tasks
}

// DestroyPlan builds the ordered task list that removes a previously
// generated target: one delete per project-relative path, removal of the
// target's directory once empty, then (for pages) the route line removal.
func DestroyPlan(t Target, relPaths []string, l project.Layout) []task.Task {
	var tasks []task.Task

	for _, rel := range relPaths {
		tasks = append(tasks, task.Task{
			Title: "Deleting " + rel,
			Op: task.Op{
				Type: task.OpDeleteFile,
				Path: l.Abs(rel),
			},
		})
	}

	dir := WebRel(l, t.Dir())
	tasks = append(tasks, task.Task{
		Title: "Removing " + dir,
		Op: task.Op{
			Type: task.OpRemoveDir,
			Path: l.Abs(dir),
		},
	})

	if t.Kind() == KindPage {
		tasks = append(tasks, task.Task{
			Title: "Cleaning up " + l.Rel(l.RoutesFile),
			Op: task.Op{
				Type: task.OpRemoveRoute,
				Path: l.RoutesFile,
				Match: routes.Match{
					Path: t.RoutePath(),
					Name: t.RouteName(),
				},
			},
		})
	}

	return tasks
}
