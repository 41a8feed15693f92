// Package templates provides the file templates used by the generators,
// with variable substitution and optional project-local overrides.
package templates

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lattice-dev/lattice/internal/fsys"
)

//go:embed files
var builtin embed.FS

// Variant identifies which file of a target a template produces.
type Variant string

const (
	VariantComponent Variant = "component"
	VariantTest      Variant = "test"
	VariantStories   Variant = "stories"
)

// Vars holds the available template variables for substitution.
type Vars struct {
	// Name is the full artifact name, e.g. "AboutPage".
	Name string
	// Title is the bare PascalCase name, e.g. "About".
	Title string
	// Slug is the kebab-case name, e.g. "about".
	Slug string
	// Path is the route path, e.g. "/about". Empty for non-page kinds.
	Path string
}

// Source resolves templates, preferring project-local overrides from the
// templates/ directory (declared in generators.yaml) over the built-ins.
type Source struct {
	fs           fsys.FS
	templatesDir string
	manifest     *Manifest
}

// NewSource creates a template source for a project. templatesDir may point
// at a directory that doesn't exist; built-ins are used then.
func NewSource(fs fsys.FS, templatesDir string) (*Source, error) {
	m, err := LoadManifest(fs, templatesDir)
	if err != nil {
		return nil, err
	}
	return &Source{fs: fs, templatesDir: templatesDir, manifest: m}, nil
}

// Builtin returns a source that only serves the embedded templates.
func Builtin() *Source {
	return &Source{}
}

// Load returns the template content for a kind ("page", "component",
// "layout") and variant, with project overrides applied.
func (s *Source) Load(kind string, variant Variant) (string, error) {
	if s != nil && s.manifest != nil {
		if override := s.manifest.lookup(kind, variant); override != "" {
			path := filepath.Join(s.templatesDir, filepath.FromSlash(override))
			data, err := s.fs.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("template override %s: %w", override, err)
			}
			return string(data), nil
		}
	}

	name := builtinName(kind, variant)
	data, err := builtin.ReadFile("files/" + name)
	if err != nil {
		return "", fmt.Errorf("no template for %s %s", kind, variant)
	}
	return string(data), nil
}

func builtinName(kind string, variant Variant) string {
	switch variant {
	case VariantTest:
		return kind + ".test.jsx.tmpl"
	case VariantStories:
		return kind + ".stories.jsx.tmpl"
	default:
		return kind + ".jsx.tmpl"
	}
}

// Apply substitutes template variables in the content.
// Variables use {{name}} syntax. Unknown variables are left as-is, so JSX
// expressions in templates pass through untouched.
func Apply(content string, vars Vars) string {
	if content == "" {
		return content
	}

	replacements := map[string]string{
		"{{name}}":  vars.Name,
		"{{title}}": vars.Title,
		"{{slug}}":  vars.Slug,
		"{{path}}":  vars.Path,
	}
	for placeholder, value := range replacements {
		content = strings.ReplaceAll(content, placeholder, value)
	}
	return content
}

// Render loads and applies a template in one step.
func (s *Source) Render(kind string, variant Variant, vars Vars) (string, error) {
	content, err := s.Load(kind, variant)
	if err != nil {
		return "", err
	}
	return Apply(content, vars), nil
}
