package panel

import (
	"bytes"
	"strings"
	"testing"
)

func TestPanel_RequiresTerminal(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error outside a terminal")
	}
	if !strings.Contains(errBuf.String(), "interactive terminal") {
		t.Errorf("unexpected stderr: %s", errBuf.String())
	}
}
