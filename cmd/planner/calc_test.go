package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCLIAt(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", dataDir)

	var out bytes.Buffer
	cli := NewCLI()
	cli.stdout = &out
	cli.rootCmd.SetArgs(args)
	cli.rootCmd.SetOut(&out)
	cli.rootCmd.SetErr(&out)
	err := cli.Execute()
	return out.String(), err
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runCLIAt(t, t.TempDir(), args...)
}

func TestCalcCommand(t *testing.T) {
	out, err := runCLI(t, "calc", "60", "40", "90", "90")
	if err != nil {
		t.Fatalf("calc failed: %v", err)
	}
	if !strings.Contains(out, "90.00% (10, Excellent)") {
		t.Errorf("unexpected calc output %q", out)
	}
}

func TestCalcCommandJSONFormat(t *testing.T) {
	out, err := runCLI(t, "calc", "-f", "json", "50", "50", "70", "78")
	if err != nil {
		t.Fatalf("calc failed: %v", err)
	}
	if !strings.Contains(out, `"finalPercent": 74`) {
		t.Errorf("expected json rendering, got %q", out)
	}
}

func TestCalcCommandRecordsHistory(t *testing.T) {
	dataDir := t.TempDir()

	if _, err := runCLIAt(t, dataDir, "calc", "60", "40", "90", "90"); err != nil {
		t.Fatalf("calc failed: %v", err)
	}
	if _, err := runCLIAt(t, dataDir, "calc", "50", "50", "70", "70"); err != nil {
		t.Fatalf("calc failed: %v", err)
	}

	out, err := runCLIAt(t, dataDir, "calc", "list")
	if err != nil {
		t.Fatalf("calc list failed: %v", err)
	}
	if !strings.Contains(out, "Excellent") || !strings.Contains(out, "Good") {
		t.Errorf("expected both calculations listed, got %q", out)
	}
	if !strings.Contains(out, "Average grade: 9.00") {
		t.Errorf("expected average grade line, got %q", out)
	}
}

func TestCalcRemoveCommand(t *testing.T) {
	dataDir := t.TempDir()

	out, err := runCLIAt(t, dataDir, "calc", "-f", "json", "60", "40", "90", "90")
	if err != nil {
		t.Fatalf("calc failed: %v", err)
	}
	id := extractJSONField(t, out, "id")

	if _, err := runCLIAt(t, dataDir, "calc", "rm", id); err != nil {
		t.Fatalf("calc rm failed: %v", err)
	}

	listed, err := runCLIAt(t, dataDir, "calc", "list")
	if err != nil {
		t.Fatalf("calc list failed: %v", err)
	}
	if !strings.Contains(listed, "No grades recorded.") {
		t.Errorf("expected empty history after removal, got %q", listed)
	}
}

func TestCalcCommandRejectsBadWeights(t *testing.T) {
	if _, err := runCLI(t, "calc", "60", "41", "90", "90"); err == nil {
		t.Fatal("expected weight validation error")
	}
}

func TestCalcCommandRequiresFourArgs(t *testing.T) {
	if _, err := runCLI(t, "calc", "60", "40"); err == nil {
		t.Fatal("expected argument count error")
	}
}

// extractJSONField pulls a string field out of rendered json output.
func extractJSONField(t *testing.T, out, field string) string {
	t.Helper()
	marker := `"` + field + `": "`
	i := strings.Index(out, marker)
	if i == -1 {
		t.Fatalf("field %q not found in %q", field, out)
	}
	rest := out[i+len(marker):]
	j := strings.Index(rest, `"`)
	if j == -1 {
		t.Fatalf("unterminated field %q in %q", field, out)
	}
	return rest[:j]
}
