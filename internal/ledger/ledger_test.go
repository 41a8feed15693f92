package ledger

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), ".lattice"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestPutGetRoundTrip(t *testing.T) {
	l := openTestLedger(t)

	rec := Record{
		Kind:      "page",
		Name:      "About",
		RoutePath: "/about",
		Files: []string{
			"web/src/pages/AboutPage/AboutPage.jsx",
			"web/src/pages/AboutPage/AboutPage.test.jsx",
		},
	}
	if err := l.Put(rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := l.Get("page", "About")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.RoutePath != "/about" {
		t.Errorf("RoutePath = %q", got.RoutePath)
	}
	if !reflect.DeepEqual(got.Files, rec.Files) {
		t.Errorf("Files = %v, want %v", got.Files, rec.Files)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestPutReplacesExisting(t *testing.T) {
	l := openTestLedger(t)

	first := Record{Kind: "page", Name: "About", Files: []string{"a.jsx", "b.jsx"}}
	if err := l.Put(first); err != nil {
		t.Fatalf("Put: %v", err)
	}
	second := Record{Kind: "page", Name: "About", RoutePath: "/about-us", Files: []string{"c.jsx"}}
	if err := l.Put(second); err != nil {
		t.Fatalf("Put replace: %v", err)
	}

	got, err := l.Get("page", "About")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got.Files, []string{"c.jsx"}) {
		t.Fatalf("Files = %v", got.Files)
	}
	if got.RoutePath != "/about-us" {
		t.Fatalf("RoutePath = %q", got.RoutePath)
	}
}

func TestGetMissing(t *testing.T) {
	l := openTestLedger(t)
	if _, err := l.Get("page", "Nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	l := openTestLedger(t)

	if err := l.Put(Record{Kind: "page", Name: "About", Files: []string{"a.jsx"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := l.Delete("page", "About"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := l.Get("page", "About"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("record still present: %v", err)
	}

	// Deleting again is a no-op.
	if err := l.Delete("page", "About"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestList(t *testing.T) {
	l := openTestLedger(t)

	records := []Record{
		{Kind: "page", Name: "About", RoutePath: "/about", Files: []string{"a.jsx"}},
		{Kind: "component", Name: "NavBar", Files: []string{"n.jsx"}},
		{Kind: "page", Name: "Contact", RoutePath: "/contact", Files: []string{"c.jsx"}},
	}
	for _, rec := range records {
		if err := l.Put(rec); err != nil {
			t.Fatalf("Put %s: %v", rec.Name, err)
		}
	}

	got, err := l.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records", len(got))
	}
	// Ordered by kind then name.
	if got[0].Name != "NavBar" || got[1].Name != "About" || got[2].Name != "Contact" {
		t.Fatalf("unexpected order: %v, %v, %v", got[0].Name, got[1].Name, got[2].Name)
	}
	if len(got[1].Files) != 1 {
		t.Fatalf("files not loaded: %+v", got[1])
	}
}
