// Package task runs the generator pipeline's ordered task lists.
//
// Tasks are data, not closures over side effects: each carries a tagged
// operation that a single executor interprets against an injected
// filesystem. Callers can inspect or filter a task list (dry runs) before
// deciding to run it, and choose how progress is rendered.
package task

import (
	"fmt"

	"github.com/lattice-dev/lattice/internal/routes"
)

// OpType tags the operation a task performs.
type OpType string

const (
	// OpWriteFile writes Content to Path, creating parent directories.
	OpWriteFile OpType = "write-file"

	// OpDeleteFile removes the file at Path. A missing file is a failure.
	OpDeleteFile OpType = "delete-file"

	// OpRemoveDir removes Path if it is an empty directory; otherwise no-op.
	OpRemoveDir OpType = "remove-dir"

	// OpInsertRoute inserts a route line into the route table at Path.
	OpInsertRoute OpType = "insert-route"

	// OpRemoveRoute removes the route line matching Match from the route
	// table at Path. No match is a tolerated no-op, not an error.
	OpRemoveRoute OpType = "remove-route"
)

// Op is one tagged file-system or text mutation. Which fields are used
// depends on Type.
type Op struct {
	Type OpType

	// Path is the absolute file (or directory) the operation touches.
	Path string

	// Content is the data written by OpWriteFile.
	Content string

	// Route carries the attributes for OpInsertRoute.
	Route RouteSpec

	// Match selects the line removed by OpRemoveRoute.
	Match routes.Match
}

// RouteSpec is the route line inserted by OpInsertRoute.
type RouteSpec struct {
	Path string
	Page string
	Name string
}

// Task is a named unit of work. Tasks execute in the order given; a task's
// failure never halts the ones after it.
type Task struct {
	// Title is the human-readable progress line for the task.
	Title string

	Op Op
}

// Result records the outcome of one executed task.
type Result struct {
	Task Task

	// Err is the task's failure, nil on success.
	Err error

	// Note is extra detail for the renderer, e.g. "no matching route".
	Note string
}

// Errors aggregates per-task failures from a run.
type Errors []Result

func (e Errors) Error() string {
	if len(e) == 1 {
		return fmt.Sprintf("%s: %v", e[0].Task.Title, e[0].Err)
	}
	return fmt.Sprintf("%d tasks failed (first: %s: %v)", len(e), e[0].Task.Title, e[0].Err)
}
