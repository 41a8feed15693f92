// Package scaffold resolves generator targets into deterministic file sets.
//
// Resolution is pure: given the same name and options, a target always
// produces the same set of web-side relative paths. No filesystem access
// happens here; writing and deleting is the task runner's job.
package scaffold

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lattice-dev/lattice/internal/slugs"
)

// Kind is the category of artifact a generator produces.
type Kind string

const (
	KindPage      Kind = "page"
	KindComponent Kind = "component"
	KindLayout    Kind = "layout"
)

// Kinds lists all supported generator kinds, for CLI help and completion.
func Kinds() []string {
	return []string{string(KindPage), string(KindComponent), string(KindLayout)}
}

// ParseKind validates a kind argument from the CLI.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPage, KindComponent, KindLayout:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown generator %q (expected one of: %s)", s, strings.Join(Kinds(), ", "))
}

// Options configures which files a target produces.
type Options struct {
	// IncludeTests emits a .test.jsx file.
	IncludeTests bool

	// IncludeStories emits a .stories.jsx file.
	IncludeStories bool

	// RoutePath overrides the route path derived from the name
	// (pages only). Must start with '/'.
	RoutePath string
}

// Target is a logical entity name plus options, immutable once constructed.
type Target struct {
	kind Kind
	name string
	opts Options
}

// NewTarget validates the name and constructs a target.
func NewTarget(kind Kind, name string, opts Options) (Target, error) {
	if err := slugs.ValidateName(name); err != nil {
		return Target{}, err
	}
	if opts.RoutePath != "" {
		if kind != KindPage {
			return Target{}, fmt.Errorf("--path only applies to pages")
		}
		if !strings.HasPrefix(opts.RoutePath, "/") {
			return Target{}, fmt.Errorf("route path %q must start with '/'", opts.RoutePath)
		}
	}
	return Target{kind: kind, name: name, opts: opts}, nil
}

// Kind returns the target's generator kind.
func (t Target) Kind() Kind { return t.kind }

// Options returns the target's options.
func (t Target) Options() Options { return t.opts }

// Title is the bare PascalCase name, e.g. "About" or "AboutUs".
func (t Target) Title() string {
	return slugs.PascalCase(t.name)
}

// ArtifactName is the full artifact name including the kind suffix,
// e.g. "AboutPage" or "NavBarLayout". Components carry no suffix.
func (t Target) ArtifactName() string {
	switch t.kind {
	case KindPage:
		return t.Title() + "Page"
	case KindLayout:
		return t.Title() + "Layout"
	default:
		return t.Title()
	}
}

// Slug is the kebab-case form of the name, e.g. "about-us".
func (t Target) Slug() string {
	return slugs.RouteSlug(t.name)
}

// RoutePath is the URL path for a page target: the custom --path when
// given, otherwise "/" + slug.
func (t Target) RoutePath() string {
	if t.opts.RoutePath != "" {
		return t.opts.RoutePath
	}
	return "/" + t.Slug()
}

// RouteName is the camelCase route name attribute, e.g. "aboutUs".
func (t Target) RouteName() string {
	return slugs.CamelCase(t.name)
}

// dir returns the web-side directory for the target's kind.
func (t Target) dir() string {
	switch t.kind {
	case KindPage:
		return "pages"
	case KindLayout:
		return "layouts"
	default:
		return "components"
	}
}

// Dir returns the web-side relative directory holding the target's files,
// e.g. "pages/AboutPage".
func (t Target) Dir() string {
	return t.dir() + "/" + t.ArtifactName()
}

// Files returns the canonical web-side relative paths for the target,
// in a fixed order: component, test, stories.
func (t Target) Files() []File {
	base := t.Dir() + "/" + t.ArtifactName()
	files := []File{{Path: base + ".jsx", Variant: VariantComponent}}
	if t.opts.IncludeTests {
		files = append(files, File{Path: base + ".test.jsx", Variant: VariantTest})
	}
	if t.opts.IncludeStories {
		files = append(files, File{Path: base + ".stories.jsx", Variant: VariantStories})
	}
	return files
}

// Paths returns just the relative paths of Files, sorted.
func (t Target) Paths() []string {
	files := t.Files()
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	sort.Strings(out)
	return out
}
