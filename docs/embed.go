package docs

import "embed"

// FS contains the Markdown documentation bundled with the lattice binary.
//
//go:embed topics
var FS embed.FS
