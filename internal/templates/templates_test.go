package templates

import (
	"strings"
	"testing"

	"github.com/lattice-dev/lattice/internal/fsys"
)

func TestApply(t *testing.T) {
	vars := Vars{Name: "AboutPage", Title: "About", Slug: "about", Path: "/about"}

	tests := []struct {
		in   string
		want string
	}{
		{"const {{name}} = ...", "const AboutPage = ..."},
		{"title: 'Pages/{{title}}'", "title: 'Pages/About'"},
		{"{{slug}} -> {{path}}", "about -> /about"},
		// Unknown placeholders (JSX expressions) pass through untouched.
		{"style={{ color: 'red' }}", "style={{ color: 'red' }}"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Apply(tt.in, vars); got != tt.want {
			t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuiltinTemplates(t *testing.T) {
	src := Builtin()
	vars := Vars{Name: "AboutPage", Title: "About", Slug: "about", Path: "/about"}

	for _, kind := range []string{"page", "component", "layout"} {
		for _, variant := range []Variant{VariantComponent, VariantTest, VariantStories} {
			content, err := src.Render(kind, variant, vars)
			if err != nil {
				t.Fatalf("Render(%s, %s): %v", kind, variant, err)
			}
			if strings.Contains(content, "{{name}}") {
				t.Errorf("Render(%s, %s): unsubstituted {{name}}", kind, variant)
			}
			if !strings.Contains(content, "AboutPage") {
				t.Errorf("Render(%s, %s): missing artifact name:\n%s", kind, variant, content)
			}
		}
	}
}

func TestBuiltinUnknownKind(t *testing.T) {
	if _, err := Builtin().Load("cell", VariantComponent); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestManifestOverride(t *testing.T) {
	fs := fsys.NewMemFS()
	dir := "/proj/templates"
	manifest := `version: 1
generators:
  page:
    component: custom-page.jsx.tmpl
`
	if err := fs.WriteFile(dir+"/generators.yaml", []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if err := fs.WriteFile(dir+"/custom-page.jsx.tmpl", []byte("custom {{name}}"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	src, err := NewSource(fs, dir)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	got, err := src.Render("page", VariantComponent, Vars{Name: "AboutPage"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "custom AboutPage" {
		t.Fatalf("Render = %q", got)
	}

	// Variants without an override fall back to built-ins.
	fallback, err := src.Load("page", VariantTest)
	if err != nil {
		t.Fatalf("Load fallback: %v", err)
	}
	if !strings.Contains(fallback, "{{name}}") {
		t.Fatalf("expected builtin test template, got %q", fallback)
	}
}

func TestManifestMissingIsNoOverrides(t *testing.T) {
	src, err := NewSource(fsys.NewMemFS(), "/proj/templates")
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	if _, err := src.Load("page", VariantComponent); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestManifestRejectsEscapingPaths(t *testing.T) {
	fs := fsys.NewMemFS()
	dir := "/proj/templates"
	manifest := `generators:
  page:
    component: ../../etc/passwd
`
	if err := fs.WriteFile(dir+"/generators.yaml", []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if _, err := NewSource(fs, dir); err == nil {
		t.Fatal("expected error for escaping template path")
	}
}
