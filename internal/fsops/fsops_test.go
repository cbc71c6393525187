package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRemoveIfExists(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "cache")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := RemoveIfExists(dir); err != nil {
		t.Fatalf("RemoveIfExists() error: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("dir still present")
	}

	// Removing a missing path is a no-op.
	if err := RemoveIfExists(dir); err != nil {
		t.Errorf("RemoveIfExists() on missing path: %v", err)
	}
}

func TestCopyDir(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	if err := os.MkdirAll(filepath.Join(src, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "sub", "file.txt"), []byte("data"), 0640); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink("sub/file.txt", filepath.Join(src, "link")); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(tmp, "dst")
	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "sub", "file.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "data" {
		t.Errorf("copied content = %q", data)
	}

	info, err := os.Stat(filepath.Join(dst, "sub", "file.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0640 {
		t.Errorf("mode = %v, want 0640", info.Mode().Perm())
	}

	// Symlinks are recreated, not followed.
	target, err := os.Readlink(filepath.Join(dst, "link"))
	if err != nil {
		t.Fatalf("link not recreated: %v", err)
	}
	if target != "sub/file.txt" {
		t.Errorf("link target = %q", target)
	}
}

func TestCopyDirRejectsFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CopyDir(file, filepath.Join(tmp, "dst")); err == nil {
		t.Fatal("CopyDir() accepted a file source")
	}
}
