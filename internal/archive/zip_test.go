package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCreate(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "Firebase")
	if err := os.MkdirAll(filepath.Join(src, "FirebaseCore"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "README.md"), []byte("readme"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "FirebaseCore", "module.map"), []byte("module"), 0644); err != nil {
		t.Fatal(err)
	}

	zipPath := filepath.Join(tmp, "Firebase-10.5.0.zip")
	if err := Create(src, zipPath); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)

	want := []string{
		"Firebase/FirebaseCore/",
		"Firebase/FirebaseCore/module.map",
		"Firebase/README.md",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("archive entries mismatch (-want +got):\n%s", diff)
	}

	for _, f := range zr.File {
		if f.Name != "Firebase/README.md" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "readme" {
			t.Errorf("README.md content = %q", data)
		}
	}
}

func TestCreateRejectsFiles(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Create(file, filepath.Join(tmp, "out.zip")); err == nil {
		t.Fatal("Create() on a file should fail")
	}
}

func TestCreateMissingSource(t *testing.T) {
	tmp := t.TempDir()
	if err := Create(filepath.Join(tmp, "missing"), filepath.Join(tmp, "out.zip")); err == nil {
		t.Fatal("Create() on a missing dir should fail")
	}
}
