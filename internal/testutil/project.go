// Package testutil provides reusable test utilities for lattice tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DefaultRoutes is a minimal route table with a home and notfound route.
const DefaultRoutes = `import { Router, Route } from '@lattice/router'

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

// TestProject represents a temporary lattice project for testing.
type TestProject struct {
	Path   string
	t      *testing.T
	config string
	files  map[string]string
}

// NewTestProject creates a new test project builder.
// Call Build() to create the actual project directory.
func NewTestProject(t *testing.T) *TestProject {
	t.Helper()
	return &TestProject{
		t:     t,
		files: make(map[string]string),
	}
}

// WithConfig sets the lattice.toml content.
func (p *TestProject) WithConfig(toml string) *TestProject {
	p.config = toml
	return p
}

// WithRoutes sets the route table content at the default location.
func (p *TestProject) WithRoutes(content string) *TestProject {
	p.files["web/src/Routes.jsx"] = content
	return p
}

// WithFile adds a file to the project, path relative to the project root.
func (p *TestProject) WithFile(path, content string) *TestProject {
	p.files[path] = content
	return p
}

// Build creates the project directory, lattice.toml and all configured
// files. A default route table is included unless one was set.
func (p *TestProject) Build() *TestProject {
	p.t.Helper()

	p.Path = p.t.TempDir()
	p.writeFile("lattice.toml", p.config)

	if _, ok := p.files["web/src/Routes.jsx"]; !ok {
		p.files["web/src/Routes.jsx"] = DefaultRoutes
	}
	for path, content := range p.files {
		p.writeFile(path, content)
	}

	return p
}

func (p *TestProject) writeFile(relPath, content string) {
	p.t.Helper()
	fullPath := filepath.Join(p.Path, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		p.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		p.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file from the project.
func (p *TestProject) ReadFile(relPath string) string {
	p.t.Helper()
	content, err := os.ReadFile(filepath.Join(p.Path, filepath.FromSlash(relPath)))
	if err != nil {
		p.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the project.
func (p *TestProject) FileExists(relPath string) bool {
	p.t.Helper()
	_, err := os.Stat(filepath.Join(p.Path, filepath.FromSlash(relPath)))
	return err == nil
}
