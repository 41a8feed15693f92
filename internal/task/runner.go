package task

import (
	"fmt"

	"github.com/lattice-dev/lattice/internal/fsys"
	"github.com/lattice-dev/lattice/internal/routes"
)

// Runner executes task lists strictly in order against an injected
// filesystem. Execution is forward-only and best-effort: failures are
// collected, not fatal, and nothing is rolled back.
type Runner struct {
	fs       fsys.FS
	renderer Renderer
}

// NewRunner creates a runner. A nil renderer runs silently.
func NewRunner(fs fsys.FS, renderer Renderer) *Runner {
	if renderer == nil {
		renderer = Silent{}
	}
	return &Runner{fs: fs, renderer: renderer}
}

// Run executes every task in order and returns all results plus an Errors
// aggregate when any task failed.
func (r *Runner) Run(tasks []Task) ([]Result, error) {
	results := make([]Result, 0, len(tasks))
	var failed Errors

	for _, t := range tasks {
		r.renderer.TaskStart(t.Title)

		note, err := r.apply(t.Op)
		result := Result{Task: t, Err: err, Note: note}
		results = append(results, result)

		if err != nil {
			failed = append(failed, result)
			r.renderer.TaskFailed(t.Title, err)
			continue
		}
		r.renderer.TaskDone(t.Title, note)
	}

	if len(failed) > 0 {
		return results, failed
	}
	return results, nil
}

// apply interprets one tagged operation.
func (r *Runner) apply(op Op) (string, error) {
	switch op.Type {
	case OpWriteFile:
		if err := r.fs.WriteFile(op.Path, []byte(op.Content), 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", op.Path, err)
		}
		return "", nil

	case OpDeleteFile:
		if err := r.fs.Remove(op.Path); err != nil {
			return "", fmt.Errorf("delete %s: %w", op.Path, err)
		}
		return "", nil

	case OpRemoveDir:
		if err := r.fs.RemoveDirIfEmpty(op.Path); err != nil {
			return "", fmt.Errorf("remove directory %s: %w", op.Path, err)
		}
		return "", nil

	case OpInsertRoute:
		content, err := r.fs.ReadFile(op.Path)
		if err != nil {
			return "", fmt.Errorf("read route table %s: %w", op.Path, err)
		}
		updated, ok := routes.Insert(string(content), op.Route.Path, op.Route.Page, op.Route.Name)
		if !ok {
			return "", fmt.Errorf("no router found in %s", op.Path)
		}
		if err := r.fs.WriteFile(op.Path, []byte(updated), 0); err != nil {
			return "", fmt.Errorf("write route table %s: %w", op.Path, err)
		}
		return "", nil

	case OpRemoveRoute:
		content, err := r.fs.ReadFile(op.Path)
		if err != nil {
			return "", fmt.Errorf("read route table %s: %w", op.Path, err)
		}
		updated, removed := routes.Remove(string(content), op.Match)
		if !removed {
			return "no matching route", nil
		}
		if err := r.fs.WriteFile(op.Path, []byte(updated), 0); err != nil {
			return "", fmt.Errorf("write route table %s: %w", op.Path, err)
		}
		return "", nil
	}

	return "", fmt.Errorf("unknown operation %q", op.Type)
}
