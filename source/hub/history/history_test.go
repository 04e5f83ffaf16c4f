package history

import (
	"path/filepath"
	"testing"
)

func TestHistoryStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, e := Open(path)
	if e != nil {
		t.Fatalf("unexpected error opening store: %v", e)
	}
	if store.Len() != 0 {
		t.Fatalf("expected an empty store, got %d lines", store.Len())
	}
	for i, line := range []string{"2 3 +", "sq := dup *", "5 sq"} {
		index, e := store.Write(line)
		if e != nil {
			t.Fatalf("unexpected error writing line: %v", e)
		}
		if index != i {
			t.Fatalf("index wrong. expected=%d, got=%d", i, index)
		}
	}
	got, e := store.GetLine(1)
	if e != nil {
		t.Fatalf("unexpected error reading line: %v", e)
	}
	if got != "sq := dup *" {
		t.Fatalf("line wrong. expected=%q, got=%q", "sq := dup *", got)
	}
	store.Close()

	// Reopening finds what was written: history survives the session.
	store, e = Open(path)
	if e != nil {
		t.Fatalf("unexpected error reopening store: %v", e)
	}
	defer store.Close()
	if store.Len() != 3 {
		t.Fatalf("expected 3 lines after reopening, got %d", store.Len())
	}
	lines := store.Dump().([]string)
	if len(lines) != 3 || lines[2] != "5 sq" {
		t.Fatalf("dump wrong: %v", lines)
	}
}
