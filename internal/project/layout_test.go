package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lattice-dev/lattice/internal/config"
)

func TestFindRootWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, config.FileName), []byte(""), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}
	nested := filepath.Join(root, "web", "src", "pages")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	// Resolve symlinks so macOS /tmp vs /private/tmp doesn't trip the test.
	wantRoot, _ := filepath.EvalSymlinks(root)
	gotRoot, _ := filepath.EvalSymlinks(found)
	if gotRoot != wantRoot {
		t.Fatalf("FindRoot = %q, want %q", gotRoot, wantRoot)
	}
}

func TestFindRootNotAProject(t *testing.T) {
	if _, err := FindRoot(t.TempDir()); err == nil {
		t.Fatal("expected error outside a project")
	}
}

func TestLayoutDirs(t *testing.T) {
	l := NewLayout("/proj", &config.Config{})

	if got, want := l.PagesDir(), filepath.FromSlash("/proj/web/src/pages"); got != want {
		t.Errorf("PagesDir = %q, want %q", got, want)
	}
	if got, want := l.ComponentsDir(), filepath.FromSlash("/proj/web/src/components"); got != want {
		t.Errorf("ComponentsDir = %q, want %q", got, want)
	}
	if got, want := l.RoutesFile, filepath.FromSlash("/proj/web/src/Routes.jsx"); got != want {
		t.Errorf("RoutesFile = %q, want %q", got, want)
	}
	if got, want := l.LatticeDir(), filepath.FromSlash("/proj/.lattice"); got != want {
		t.Errorf("LatticeDir = %q, want %q", got, want)
	}
}

func TestLayoutRelAbs(t *testing.T) {
	l := NewLayout(filepath.FromSlash("/proj"), nil)

	rel := l.Rel(filepath.FromSlash("/proj/web/src/pages/AboutPage/AboutPage.jsx"))
	if rel != "web/src/pages/AboutPage/AboutPage.jsx" {
		t.Fatalf("Rel = %q", rel)
	}
	abs := l.Abs(rel)
	if abs != filepath.FromSlash("/proj/web/src/pages/AboutPage/AboutPage.jsx") {
		t.Fatalf("Abs = %q", abs)
	}
}

func TestResolveLoadsConfig(t *testing.T) {
	root := t.TempDir()
	content := "[web]\nsrc = \"frontend/src\"\n"
	if err := os.WriteFile(filepath.Join(root, config.FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	layout, cfg, err := Resolve(root, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.WebSrc() != "frontend/src" {
		t.Errorf("WebSrc = %q", cfg.WebSrc())
	}
	if filepath.Base(layout.WebSrc) != "src" || filepath.Base(filepath.Dir(layout.WebSrc)) != "frontend" {
		t.Errorf("layout.WebSrc = %q", layout.WebSrc)
	}
}
