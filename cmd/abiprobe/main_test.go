package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	abiprobe "github.com/wippyai/abi-probe"
)

func TestReportWriterDefaultsToStdout(t *testing.T) {
	w, closer, err := reportWriter("")
	if err != nil {
		t.Fatalf("reportWriter(\"\") error = %v", err)
	}
	if w != os.Stdout {
		t.Errorf("writer = %v, want os.Stdout", w)
	}
	if closer != nil {
		t.Errorf("closer = %v, want nil for stdout", closer)
	}
}

func TestReportWriterFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	w, closer, err := reportWriter(path)
	if err != nil {
		t.Fatalf("reportWriter(%q) error = %v", path, err)
	}
	if closer == nil {
		t.Fatal("closer = nil, want file closer")
	}

	sum := abiprobe.Run(w)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !sum.OK() {
		t.Fatalf("Run errors = %v", sum.Errors)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("report lines = %d, want 9:\n%s", len(lines), data)
	}
	if lines[0] != "MIHO:ABI" {
		t.Errorf("first line = %q, want %q", lines[0], "MIHO:ABI")
	}
	if lines[len(lines)-1] != "DECL:link" {
		t.Errorf("last line = %q, want %q", lines[len(lines)-1], "DECL:link")
	}
}

func TestReportWriterBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.txt")

	if _, _, err := reportWriter(path); err == nil {
		t.Error("reportWriter() error = nil, want create failure")
	}
}
