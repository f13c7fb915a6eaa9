package distribute

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snipyard/internal/domain"
)

func TestInsertHereGoesToWriter(t *testing.T) {
	var out strings.Builder
	d := New(&out, t.TempDir())

	m := domain.NewDestinationMap()
	m.Fold(domain.HereDestination, "", "hello", "")

	if err := d.Insert(m); err != nil {
		t.Fatal(err)
	}
	if out.String() != "hello" {
		t.Errorf("here output = %q", out.String())
	}
}

func TestInsertCreatesAndPrependsFiles(t *testing.T) {
	dir := t.TempDir()
	d := New(nil, dir)

	m := domain.NewDestinationMap()
	m.Fold("fresh.py", "", "new file", "")
	if err := d.Insert(m); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "fresh.py"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new file" {
		t.Errorf("fresh.py = %q", got)
	}

	// second insert lands at the beginning of the file
	m = domain.NewDestinationMap()
	m.Fold("fresh.py", "", "on top", "")
	if err := d.Insert(m); err != nil {
		t.Fatal(err)
	}
	got, _ = os.ReadFile(filepath.Join(dir, "fresh.py"))
	if string(got) != "on top\nnew file" {
		t.Errorf("fresh.py = %q", got)
	}
}

func TestInsertBestEffortAcrossDestinations(t *testing.T) {
	dir := t.TempDir()
	d := New(nil, dir)

	m := domain.NewDestinationMap()
	m.Fold(filepath.Join("no", "such", "dir", "x.py"), "", "unwritable", "")
	m.Fold("ok.py", "", "written", "")

	err := d.Insert(m)
	if err == nil {
		t.Fatal("expected an error for the unwritable destination")
	}

	// the later destination must still have been written
	got, readErr := os.ReadFile(filepath.Join(dir, "ok.py"))
	if readErr != nil {
		t.Fatalf("ok.py missing: %v", readErr)
	}
	if string(got) != "written" {
		t.Errorf("ok.py = %q", got)
	}
}

func TestCombinedJoinsInInsertionOrder(t *testing.T) {
	m := domain.NewDestinationMap()
	m.Fold(domain.HereDestination, "", "first", "")
	m.Fold("b.py", "", "second", "")
	m.Fold("a.py", "", "third", "")

	if got := combined(m); got != "first\n\nsecond\n\nthird" {
		t.Errorf("combined = %q", got)
	}
}
