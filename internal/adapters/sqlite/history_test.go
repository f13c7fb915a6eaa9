package sqlite

import (
	"path/filepath"
	"testing"
)

func openTestHistory(t *testing.T) *HistoryStore {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	store, err := OpenHistory(filepath.Join(t.TempDir(), "corpus"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHistoryAddAndRecent(t *testing.T) {
	store := openTestHistory(t)

	for _, d := range []string{"first :1", "second :2", "third :3"} {
		if err := store.Add(d); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent(2) = %v", recent)
	}
}

func TestHistoryRecentDeduplicates(t *testing.T) {
	store := openTestHistory(t)

	for _, d := range []string{"a :1", "b :2", "a :1"} {
		if err := store.Add(d); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected deduplicated history, got %v", recent)
	}
	if recent[0] != "a :1" {
		t.Errorf("most recent pick should come first, got %v", recent)
	}
}

func TestHistoryEmpty(t *testing.T) {
	store := openTestHistory(t)

	recent, err := store.Recent(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Errorf("expected empty history, got %v", recent)
	}
}
