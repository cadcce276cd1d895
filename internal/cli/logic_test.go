package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogicWritesReportFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a"), make([]byte, 1000), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "report.txt")

	err := logic(options{
		Path:          root,
		Threshold:     1.2,
		Output:        "text",
		File:          out,
		ProgressEvery: 5000,
	})
	if err != nil {
		t.Fatalf("logic() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}

	if !strings.HasPrefix(string(data), "+ 1000B ") {
		t.Errorf("unexpected report start: %q", string(data))
	}
}

func TestLogicReportFileCreateError(t *testing.T) {
	root := t.TempDir()

	err := logic(options{
		Path:          root,
		Threshold:     1.2,
		Output:        "text",
		File:          filepath.Join(root, "missing", "report.txt"),
		ProgressEvery: 5000,
	})
	if err == nil {
		t.Fatal("expected error for uncreatable output file")
	}
}
