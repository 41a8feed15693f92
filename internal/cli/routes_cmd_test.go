package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lattice-dev/lattice/internal/testutil"
)

func TestRoutesCommand(t *testing.T) {
	p := testutil.NewTestProject(t).Build()

	if err := runCLI(t, p.Path, "generate", "page", "About", "--silent"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if err := runCLI(t, p.Path, "routes"); err != nil {
		t.Fatalf("routes failed: %v", err)
	}
}

func TestRoutesCommandMissingFile(t *testing.T) {
	p := testutil.NewTestProject(t).Build()

	if err := os.Remove(filepath.Join(p.Path, "web", "src", "Routes.jsx")); err != nil {
		t.Fatal(err)
	}

	if err := runCLI(t, p.Path, "routes"); err == nil {
		t.Fatal("expected routes to fail without a route table")
	}
}
