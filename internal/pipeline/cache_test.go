package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInvalidateCacheExplicitDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	if err := os.MkdirAll(filepath.Join(dir, "pods"), 0755); err != nil {
		t.Fatal(err)
	}

	if err := InvalidateCache(dir); err != nil {
		t.Fatalf("InvalidateCache() error: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("cache dir still present")
	}
}

func TestInvalidateCacheDefaultRemovesBothCaches(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	toolCache := filepath.Join(home, ".fbrelease", "cache")
	stagingCache := filepath.Join(home, "Library", "Caches", "ZipBuilder")
	for _, dir := range []string{toolCache, stagingCache} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	if err := InvalidateCache(""); err != nil {
		t.Fatalf("InvalidateCache() error: %v", err)
	}
	for _, dir := range []string{toolCache, stagingCache} {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("%s still present", dir)
		}
	}
}

func TestInvalidateCacheUnresolvableHome(t *testing.T) {
	t.Setenv("HOME", "")

	if err := InvalidateCache(""); err == nil {
		t.Fatal("InvalidateCache() succeeded with no resolvable cache location")
	}
	if _, err := DefaultCacheDir(); err == nil {
		t.Fatal("DefaultCacheDir() succeeded with no home directory")
	}
}
