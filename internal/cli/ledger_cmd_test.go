package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lattice-dev/lattice/internal/ledger"
	"github.com/lattice-dev/lattice/internal/testutil"
)

func TestLedgerRecordsGenerateRuns(t *testing.T) {
	p := testutil.NewTestProject(t).Build()

	if err := runCLI(t, p.Path, "generate", "page", "About", "--silent"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if err := runCLI(t, p.Path, "generate", "component", "NavBar", "--silent"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	latticeDir := filepath.Join(p.Path, ".lattice")

	rec, err := lookupRecord(latticeDir, "page", "About")
	if err != nil {
		t.Fatalf("lookupRecord failed: %v", err)
	}
	if rec.RoutePath != "/about" {
		t.Errorf("RoutePath = %q, want /about", rec.RoutePath)
	}
	if len(rec.Files) != 3 {
		t.Errorf("recorded %d files, want 3: %v", len(rec.Files), rec.Files)
	}

	if err := runCLI(t, p.Path, "ledger"); err != nil {
		t.Fatalf("ledger command failed: %v", err)
	}
}

func TestDestroyDropsLedgerRecord(t *testing.T) {
	p := testutil.NewTestProject(t).Build()

	if err := runCLI(t, p.Path, "generate", "component", "Badge", "--silent"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if err := runCLI(t, p.Path, "destroy", "component", "Badge", "--force", "--silent"); err != nil {
		t.Fatalf("destroy failed: %v", err)
	}

	_, err := lookupRecord(filepath.Join(p.Path, ".lattice"), "component", "Badge")
	if !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("expected record to be dropped, got %v", err)
	}
}
