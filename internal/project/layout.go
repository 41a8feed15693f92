// Package project resolves a lattice project's root and directory layout.
//
// Layout is an explicit value: commands resolve it once and pass it into the
// components that need it, rather than relying on ambient process-wide
// lookup.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lattice-dev/lattice/internal/config"
)

// Layout holds the fixed, well-known directories of a project.
// All fields are absolute paths.
type Layout struct {
	// Root is the project root (the directory containing lattice.toml).
	Root string

	// WebSrc is the web-side source tree.
	WebSrc string

	// RoutesFile is the route table source file.
	RoutesFile string

	// APISrc is the api-side source tree.
	APISrc string
}

// LatticeDirName is the per-project directory for derived files (the ledger).
const LatticeDirName = ".lattice"

// NewLayout builds a Layout from a root directory and its config.
func NewLayout(root string, cfg *config.Config) Layout {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return Layout{
		Root:       root,
		WebSrc:     filepath.Join(root, filepath.FromSlash(cfg.WebSrc())),
		RoutesFile: filepath.Join(root, filepath.FromSlash(cfg.RoutesFile())),
		APISrc:     filepath.Join(root, filepath.FromSlash(cfg.APISrc())),
	}
}

// PagesDir returns the directory holding page components.
func (l Layout) PagesDir() string {
	return filepath.Join(l.WebSrc, "pages")
}

// ComponentsDir returns the directory holding shared components.
func (l Layout) ComponentsDir() string {
	return filepath.Join(l.WebSrc, "components")
}

// LayoutsDir returns the directory holding layout components.
func (l Layout) LayoutsDir() string {
	return filepath.Join(l.WebSrc, "layouts")
}

// TemplatesDir returns the directory for project-local template overrides.
func (l Layout) TemplatesDir() string {
	return filepath.Join(l.Root, "templates")
}

// LatticeDir returns the directory for derived files (ledger database).
func (l Layout) LatticeDir() string {
	return filepath.Join(l.Root, LatticeDirName)
}

// Rel converts an absolute path inside the project to a root-relative,
// slash-separated path. Paths outside the project are returned unchanged.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// Abs converts a root-relative path to an absolute one.
func (l Layout) Abs(rel string) string {
	return filepath.Join(l.Root, filepath.FromSlash(rel))
}

// FindRoot walks up from startDir looking for lattice.toml.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}

	for {
		marker := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(marker); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not a lattice project (no %s found in %s or any parent)", config.FileName, startDir)
		}
		dir = parent
	}
}

// Resolve finds the project root starting at startDir and loads its layout.
// If explicitRoot is non-empty it is used directly.
func Resolve(startDir, explicitRoot string) (Layout, *config.Config, error) {
	root := explicitRoot
	if root == "" {
		found, err := FindRoot(startDir)
		if err != nil {
			return Layout{}, nil, err
		}
		root = found
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return Layout{}, nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	cfg, err := config.Load(absRoot)
	if err != nil {
		return Layout{}, nil, err
	}

	return NewLayout(absRoot, cfg), cfg, nil
}
