package templates

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lattice-dev/lattice/internal/fsys"
)

// ManifestFileName declares project-local template overrides.
const ManifestFileName = "generators.yaml"

// Manifest maps generator kinds to template override files, all relative to
// the templates/ directory.
//
// Example generators.yaml:
//
//	version: 1
//	generators:
//	  page:
//	    component: page.jsx.tmpl
//	    test: page.test.jsx.tmpl
type Manifest struct {
	Version    int                          `yaml:"version"`
	Generators map[string]map[string]string `yaml:"generators"`
}

// LoadManifest reads generators.yaml from templatesDir. A missing file is
// not an error; it just means no overrides.
func LoadManifest(fs fsys.FS, templatesDir string) (*Manifest, error) {
	path := filepath.Join(templatesDir, ManifestFileName)
	if !fs.Exists(path) {
		return nil, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestFileName, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestFileName, err)
	}
	if m.Version != 0 && m.Version != 1 {
		return nil, fmt.Errorf("%s: unsupported version %d", ManifestFileName, m.Version)
	}

	for kind, variants := range m.Generators {
		for variant, file := range variants {
			normalized := filepath.ToSlash(filepath.Clean(strings.TrimSpace(file)))
			if normalized == "" || normalized == "." ||
				strings.HasPrefix(normalized, "../") || filepath.IsAbs(file) {
				return nil, fmt.Errorf("%s: generator %s.%s: template path must stay inside the templates directory", ManifestFileName, kind, variant)
			}
			variants[variant] = normalized
		}
	}

	return &m, nil
}

func (m *Manifest) lookup(kind string, variant Variant) string {
	if m == nil || m.Generators == nil {
		return ""
	}
	variants, ok := m.Generators[kind]
	if !ok {
		return ""
	}
	return variants[string(variant)]
}
