package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLinesAndCleansUp(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	want := filepath.Join(tmp, ".agegroup", "logs", "agegroup.log")
	if FilePath(tmp) != want {
		t.Fatalf("unexpected FilePath %s", FilePath(tmp))
	}
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Debug("classify.start", "dataset", "customers")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if Path() != "" {
		t.Fatalf("expected logger to be reset after cleanup, path=%q", Path())
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), b)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "classify.start" || entry["dataset"] != "customers" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	path := Path()
	L().Debug("hidden")
	_ = cleanup()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(b), "hidden") {
		t.Fatalf("debug entry written at info level:\n%s", b)
	}
}

func TestSetup_StaleCleanupKeepsNewerLogger(t *testing.T) {
	first, err := Setup(Config{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	second, err := Setup(Config{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	current := Path()

	if err := first(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if Path() != current {
		t.Fatalf("expected %s to stay installed, got %q", current, Path())
	}

	if err := second(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if Path() != "" {
		t.Fatalf("expected discard logger, got %q", Path())
	}
}
