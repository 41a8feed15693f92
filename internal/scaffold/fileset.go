package scaffold

import (
	"sort"

	"github.com/lattice-dev/lattice/internal/templates"
)

// Variant aliases the template variant so callers of this package don't need
// to import templates directly.
type Variant = templates.Variant

const (
	VariantComponent = templates.VariantComponent
	VariantTest      = templates.VariantTest
	VariantStories   = templates.VariantStories
)

// File is one resolved artifact path plus the template variant producing it.
type File struct {
	// Path is relative to the web-side source directory.
	Path    string
	Variant Variant
}

// FileSet maps relative file paths to rendered content. Keys are unique;
// iteration order is not significant, use Paths for a stable order.
type FileSet struct {
	contents map[string]string
}

// NewFileSet returns an empty file set.
func NewFileSet() *FileSet {
	return &FileSet{contents: make(map[string]string)}
}

// Add records content for a path, replacing any previous entry.
func (s *FileSet) Add(path, content string) {
	s.contents[path] = content
}

// Content returns the content for a path.
func (s *FileSet) Content(path string) (string, bool) {
	c, ok := s.contents[path]
	return c, ok
}

// Paths returns all paths in sorted order.
func (s *FileSet) Paths() []string {
	out := make([]string, 0, len(s.contents))
	for p := range s.contents {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of files in the set.
func (s *FileSet) Len() int {
	return len(s.contents)
}

// Render resolves the target's files and renders each through the template
// source. The result is deterministic for a given target and source.
func Render(t Target, src *templates.Source) (*FileSet, error) {
	vars := templates.Vars{
		Name:  t.ArtifactName(),
		Title: t.Title(),
		Slug:  t.Slug(),
	}
	if t.Kind() == KindPage {
		vars.Path = t.RoutePath()
	}

	set := NewFileSet()
	for _, f := range t.Files() {
		content, err := src.Render(string(t.Kind()), f.Variant, vars)
		if err != nil {
			return nil, err
		}
		set.Add(f.Path, content)
	}
	return set, nil
}
