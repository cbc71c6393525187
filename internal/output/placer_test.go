package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVersionedDirName(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"10.5.0", "10_5_0"},
		{"7.0.0", "7_0_0"},
		{"11.0", "11_0"},
		{"8", "8"},
	}
	for _, tt := range tests {
		if got := VersionedDirName(tt.version); got != tt.want {
			t.Errorf("VersionedDirName(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestPlaceArchiveOnly(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "Firebase-10.5.0.zip")
	if err := os.WriteFile(archive, []byte("zip"), 0644); err != nil {
		t.Fatal(err)
	}
	outputDir := filepath.Join(tmp, "out")

	placement, err := Place(archive, "", outputDir, "10.5.0")
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	want := filepath.Join(outputDir, "10_5_0", "Firebase-10.5.0.zip")
	if placement.ArchivePath != want {
		t.Errorf("ArchivePath = %q, want %q", placement.ArchivePath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("archive not placed: %v", err)
	}
	if placement.CarthagePath != "" {
		t.Errorf("CarthagePath = %q, want empty", placement.CarthagePath)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "carthage")); !os.IsNotExist(err) {
		t.Error("carthage dir created without a carthage distribution")
	}
}

func TestPlaceWithCarthage(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "Firebase-10.5.0-rc2.zip")
	if err := os.WriteFile(archive, []byte("zip"), 0644); err != nil {
		t.Fatal(err)
	}
	carthageDir := filepath.Join(tmp, "carthage-src")
	if err := os.MkdirAll(filepath.Join(carthageDir, "10.5.0", "rc2"), 0755); err != nil {
		t.Fatal(err)
	}
	outputDir := filepath.Join(tmp, "out")

	placement, err := Place(archive, carthageDir, outputDir, "10.5.0")
	if err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "carthage", "10.5.0", "rc2")); err != nil {
		t.Errorf("carthage tree not placed: %v", err)
	}
	if placement.CarthagePath != filepath.Join(outputDir, "carthage") {
		t.Errorf("CarthagePath = %q", placement.CarthagePath)
	}
}

func TestPlaceClearsPreviousRelease(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "Firebase-10.5.0.zip")
	if err := os.WriteFile(archive, []byte("zip"), 0644); err != nil {
		t.Fatal(err)
	}
	outputDir := filepath.Join(tmp, "out")

	// A previous run of possibly the same version.
	stale := filepath.Join(outputDir, "10_5_0", "Firebase-10.5.0.zip")
	if err := os.MkdirAll(filepath.Dir(stale), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(outputDir, "carthage"), 0755); err != nil {
		t.Fatal(err)
	}

	if _, err := Place(archive, "", outputDir, "10.5.0"); err != nil {
		t.Fatalf("Place() error: %v", err)
	}

	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "zip" {
		t.Errorf("stale archive survived the clear: %q", data)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "carthage")); !os.IsNotExist(err) {
		t.Error("stale carthage dir survived the clear")
	}
}
