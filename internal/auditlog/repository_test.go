package auditlog

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/hexpair/internal/database"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexpair.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &AuditEntry{
		Command:    "hexpair color generate",
		Color:      "a1b2c3",
		PairCount:  1,
		Outcome:    OutcomeSuccess,
		DurationMs: 3,
	}

	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)

	base := time.Now().UTC()
	for i := range 3 {
		entry := &AuditEntry{
			Command:   "hexpair color generate",
			Outcome:   OutcomeSuccess,
			PairCount: i + 1,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
	if entries[0].PairCount != 3 {
		t.Errorf("expected newest entry first (pair_count 3), got %d", entries[0].PairCount)
	}
}

func TestListByCommand(t *testing.T) {
	r := tempRepo(t)

	entries := []*AuditEntry{
		{Command: "hexpair color generate", Outcome: OutcomeSuccess},
		{Command: "hexpair color clear", Outcome: OutcomeSuccess},
		{Command: "hexpair color generate", Outcome: OutcomeError},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := r.ListByCommand("hexpair color generate", 10)
	if err != nil {
		t.Fatalf("ListByCommand failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, entry := range got {
		if entry.Command != "hexpair color generate" {
			t.Errorf("expected command 'hexpair color generate', got %q", entry.Command)
		}
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	oldEntry := &AuditEntry{
		Command:   "hexpair color list",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}
	recentEntry := &AuditEntry{
		Command:   "hexpair color list",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-1 * time.Hour),
	}

	if err := r.Save(oldEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Save(recentEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(remaining))
	}
}

func TestRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexpair.db")
	database.SetPath(path)
	t.Cleanup(database.ResetPath)

	start := time.Now().UTC()
	Record(&AuditEntry{Command: "panel select", Color: "ABCDEF"}, nil, start)
	Record(&AuditEntry{Command: "panel generate"}, errors.New("disk full"), start.Add(time.Millisecond))

	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	defer r.Close()

	entries, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Outcome != OutcomeError || entries[0].Detail != "disk full" {
		t.Errorf("expected error entry first, got %+v", entries[0])
	}
	if entries[1].Outcome != OutcomeSuccess || entries[1].Color != "ABCDEF" {
		t.Errorf("expected success entry with color, got %+v", entries[1])
	}
}

func TestSanitizeArgs(t *testing.T) {
	long := strings.Repeat("a", maxArgLen+10)
	got := SanitizeArgs([]string{"set", "zz\x1b[31m12AB", long})

	if got[0] != "set" {
		t.Errorf("expected plain arg unchanged, got %q", got[0])
	}
	if strings.ContainsRune(got[1], '\x1b') {
		t.Errorf("expected control characters removed, got %q", got[1])
	}
	if want := strings.Repeat("a", maxArgLen) + "…"; got[2] != want {
		t.Errorf("expected truncated arg, got %q", got[2])
	}
}

func TestMetadata(t *testing.T) {
	ctx := WithMetadata(nil, Metadata{Color: "112233"})
	ctx = WithMetadata(ctx, Metadata{PairCount: 4})

	meta := MetadataFromContext(ctx)
	if meta.Color != "112233" || meta.PairCount != 4 {
		t.Errorf("unexpected merged metadata: %+v", meta)
	}
	if got := MetadataFromContext(nil); got != (Metadata{}) {
		t.Errorf("expected zero metadata for nil context, got %+v", got)
	}
}
