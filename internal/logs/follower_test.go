package logs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFollowerDrainsOnStop(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	f, err := NewFollower(dir, &out)
	if err != nil {
		t.Fatalf("NewFollower() error: %v", err)
	}
	f.Start()

	if err := os.WriteFile(filepath.Join(dir, "build.log"), []byte("pod install ok\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// Stop performs a final sweep, so the content is seen even if the
	// watcher never delivered the event.
	f.Stop()

	if !strings.Contains(out.String(), "pod install ok") {
		t.Errorf("output = %q, want build log content", out.String())
	}

	// Non-log files are ignored.
	if strings.Contains(out.String(), "ignored") {
		t.Error("non-log file content leaked into output")
	}
}

func TestFollowerCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	f, err := NewFollower(dir, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewFollower() error: %v", err)
	}
	f.Start()
	f.Stop()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("logs dir not created: %v", err)
	}
}
