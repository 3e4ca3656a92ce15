package store

import (
	"os"
	"path/filepath"
	"testing"

	"moneybook/internal/testutil"
)

func TestFileSnapshotStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewFileSnapshotStore(dir)

	t.Run("missing file", func(t *testing.T) {
		_, ok, err := s.ReadFile("budgets.json")
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("expected missing document")
		}
	})

	t.Run("write then read", func(t *testing.T) {
		testutil.AssertNoError(t, s.WriteFile("budgets.json", `[{"id":"b1"}]`))
		content, ok, err := s.ReadFile("budgets.json")
		testutil.AssertNoError(t, err)
		if !ok || content != `[{"id":"b1"}]` {
			t.Errorf("unexpected content %q", content)
		}
	})

	t.Run("replace leaves no temp files", func(t *testing.T) {
		testutil.AssertNoError(t, s.WriteFile("budgets.json", `[]`))
		entries, err := os.ReadDir(dir)
		testutil.AssertNoError(t, err)
		if len(entries) != 1 {
			t.Errorf("expected only the snapshot, found %d entries", len(entries))
		}
		content, _, _ := s.ReadFile("budgets.json")
		if content != `[]` {
			t.Errorf("expected replaced content, got %q", content)
		}
	})
}

func TestDBSnapshotStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	s := NewDBSnapshotStore(db)

	_, ok, err := s.ReadFile("budgets.json")
	testutil.AssertNoError(t, err)
	if ok {
		t.Fatal("expected missing document")
	}

	testutil.AssertNoError(t, s.WriteFile("budgets.json", `[1]`))
	testutil.AssertNoError(t, s.WriteFile("budgets.json", `[2]`))

	content, ok, err := s.ReadFile("budgets.json")
	testutil.AssertNoError(t, err)
	if !ok || content != `[2]` {
		t.Errorf("expected upserted content, got %q", content)
	}
}
