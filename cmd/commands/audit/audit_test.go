package audit

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/hexpair/internal/auditlog"
	"nathanbeddoewebdev/hexpair/internal/database"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	database.SetPath(filepath.Join(t.TempDir(), "hexpair.db"))
	t.Cleanup(database.ResetPath)
}

func seed(t *testing.T, entries ...auditlog.AuditEntry) {
	t.Helper()
	repo, err := auditlog.Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer repo.Close()
	for i := range entries {
		if err := repo.Save(&entries[i]); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
}

func execAudit(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestList_Empty(t *testing.T) {
	setupTestDB(t)

	stdout, _ := execAudit(t, "list")
	if !strings.Contains(stdout, "No audit entries found.") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestList_Table(t *testing.T) {
	setupTestDB(t)
	seed(t,
		auditlog.AuditEntry{Command: "hexpair color generate", Color: "a1b2c3", PairCount: 3, Outcome: auditlog.OutcomeSuccess},
		auditlog.AuditEntry{Command: "hexpair color clear", Outcome: auditlog.OutcomeError, Detail: "aborted"},
	)

	stdout, stderr := execAudit(t, "list")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{"COLOR", "#A1B2C3 (3 pairs)", "hexpair color clear", "aborted"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestList_JSONFilteredByCommand(t *testing.T) {
	setupTestDB(t)
	seed(t,
		auditlog.AuditEntry{Command: "hexpair color generate", Outcome: auditlog.OutcomeSuccess},
		auditlog.AuditEntry{Command: "hexpair color clear", Outcome: auditlog.OutcomeSuccess},
	)

	stdout, _ := execAudit(t, "list", "-o", "json", "--command", "hexpair color clear")

	var got []auditlog.AuditEntry
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(got) != 1 || got[0].Command != "hexpair color clear" {
		t.Errorf("unexpected entries: %+v", got)
	}
}

func TestList_InvalidLimit(t *testing.T) {
	setupTestDB(t)

	_, stderr := execAudit(t, "list", "--limit", "0")
	if !strings.Contains(stderr, "limit must be greater than 0") {
		t.Errorf("unexpected stderr: %s", stderr)
	}
}

func TestPrune(t *testing.T) {
	setupTestDB(t)
	seed(t,
		auditlog.AuditEntry{Command: "old", Timestamp: time.Now().Add(-48 * time.Hour), Outcome: auditlog.OutcomeSuccess},
		auditlog.AuditEntry{Command: "new", Outcome: auditlog.OutcomeSuccess},
	)

	stdout, stderr := execAudit(t, "prune", "--older-than", "1d")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "Removed 1 audit") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestPrune_RequiresFlag(t *testing.T) {
	setupTestDB(t)

	_, stderr := execAudit(t, "prune")
	if !strings.Contains(stderr, "--older-than is required") {
		t.Errorf("unexpected stderr: %s", stderr)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"30d", 30 * 24 * time.Hour, false},
		{"72h", 72 * time.Hour, false},
		{"-1d", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatResource(t *testing.T) {
	tests := []struct {
		entry auditlog.AuditEntry
		want  string
	}{
		{auditlog.AuditEntry{}, "-"},
		{auditlog.AuditEntry{Color: "abcdef"}, "#ABCDEF"},
		{auditlog.AuditEntry{PairCount: 2}, "2 pairs"},
		{auditlog.AuditEntry{Color: "abcdef", PairCount: 2}, "#ABCDEF (2 pairs)"},
	}
	for _, tt := range tests {
		if got := formatResource(tt.entry); got != tt.want {
			t.Errorf("formatResource(%+v) = %q, want %q", tt.entry, got, tt.want)
		}
	}
}
