// Package carthage produces the Carthage binary distribution from an
// assembled release.
//
// Carthage consumes a JSON file per product mapping version strings to
// binary zip URLs. This package lays out a distribution tree keyed by
// version (and release-candidate qualifier) containing one zip per product,
// the updated JSON specs, and the Cartfile templates.
package carthage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dosanma1/firebase-release-cli/internal/archive"
	"github.com/dosanma1/firebase-release-cli/internal/fsops"
	"github.com/dosanma1/firebase-release-cli/pkg/xos"
)

// Options describes one Carthage generation run.
type Options struct {
	// SourceDir is the finalized release output. It is never mutated; all
	// restructuring happens on a disposable snapshot.
	SourceDir string

	// TemplateDir holds the Cartfile templates copied into the distribution.
	TemplateDir string

	// JSONDir holds the per-product binary project specs.
	JSONDir string

	// Version is the release version being distributed.
	Version string

	// RCNumber is the release-candidate number, nil for a final release.
	RCNumber *int

	// DiagnosticsPath receives a summary of what was packaged.
	DiagnosticsPath string

	// OutputDir is the root of the Carthage distribution tree.
	OutputDir string
}

// VersionSegment returns the path segment that distinguishes release
// candidates from the promoted release: "rc<N>" when a candidate number is
// present, "latest-non-rc" otherwise.
func VersionSegment(rcNumber *int) string {
	if rcNumber != nil {
		return fmt.Sprintf("rc%d", *rcNumber)
	}
	return "latest-non-rc"
}

// Generate builds the Carthage distribution tree under opts.OutputDir.
// The source release is snapshotted first and the snapshot removed on every
// exit path; a cleanup failure is an error because a leftover copy of a
// multi-gigabyte release tree is not acceptable on build machines.
func Generate(opts Options) (err error) {
	if err := ValidateJSONDir(opts.JSONDir); err != nil {
		return fmt.Errorf("invalid carthage JSON specs: %w", err)
	}

	// Clean strips any trailing slash; without it the snapshot path would
	// land inside the source tree and the copy would recurse into itself.
	snapshot := filepath.Clean(opts.SourceDir) + "-carthage"
	if err := fsops.RemoveIfExists(snapshot); err != nil {
		return fmt.Errorf("failed to clear stale snapshot: %w", err)
	}
	if err := fsops.CopyDirWithProgress(opts.SourceDir, snapshot, "Snapshotting release"); err != nil {
		return fmt.Errorf("failed to snapshot release: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(snapshot); rmErr != nil && err == nil {
			err = fmt.Errorf("failed to remove carthage snapshot: %w", rmErr)
		}
	}()

	destDir := filepath.Join(opts.OutputDir, opts.Version, VersionSegment(opts.RCNumber))
	if err := fsops.EnsureDir(destDir); err != nil {
		return fmt.Errorf("failed to create distribution dir: %w", err)
	}

	products, err := packageProducts(snapshot, destDir)
	if err != nil {
		return err
	}

	if err := copyJSONSpecs(opts.JSONDir, destDir); err != nil {
		return err
	}

	if opts.TemplateDir != "" {
		if err := fsops.CopyDir(opts.TemplateDir, destDir); err != nil {
			return fmt.Errorf("failed to copy cartfile templates: %w", err)
		}
	}

	if opts.DiagnosticsPath != "" {
		if err := writeDiagnostics(opts, products); err != nil {
			return err
		}
	}

	return nil
}

// packageProducts zips every product directory of the snapshot into destDir
// and returns the product names.
func packageProducts(snapshot, destDir string) ([]string, error) {
	entries, err := os.ReadDir(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var products []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		zipPath := filepath.Join(destDir, name+".zip")
		if err := archive.Create(filepath.Join(snapshot, name), zipPath); err != nil {
			return nil, fmt.Errorf("failed to package %s: %w", name, err)
		}
		products = append(products, name)
	}
	return products, nil
}

// copyJSONSpecs copies every .json spec from jsonDir into destDir.
func copyJSONSpecs(jsonDir, destDir string) error {
	entries, err := os.ReadDir(jsonDir)
	if err != nil {
		return fmt.Errorf("failed to read JSON dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		src := filepath.Join(jsonDir, entry.Name())
		if err := fsops.CopyFile(src, filepath.Join(destDir, entry.Name())); err != nil {
			return fmt.Errorf("failed to copy %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// writeDiagnostics records what was packaged so release failures can be
// triaged after the build machine is recycled.
func writeDiagnostics(opts Options, products []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "carthage distribution for %s (%s)\n", opts.Version, VersionSegment(opts.RCNumber))
	for _, p := range products {
		fmt.Fprintf(&b, "  packaged %s\n", p)
	}
	if err := xos.WriteFile(opts.DiagnosticsPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}
	return nil
}
