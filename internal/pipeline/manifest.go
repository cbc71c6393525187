package pipeline

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dosanma1/firebase-release-cli/pkg/xos"
)

// releaseManifest records what a run produced so automation downstream of
// the build machine does not have to parse log output.
type releaseManifest struct {
	Version      string `json:"version"`
	Archive      string `json:"archive"`
	RCNumber     *int   `json:"rcNumber,omitempty"`
	CarthagePath string `json:"carthagePath,omitempty"`
}

// writeManifest writes release-manifest.json into the output dir. The write
// is atomic so a crash mid-write never leaves a truncated manifest for
// downstream automation to trip on.
func writeManifest(opts Options, result *Result) error {
	m := releaseManifest{
		Version:  result.Version,
		Archive:  filepath.Base(result.ArchivePath),
		RCNumber: opts.RCNumber,
	}
	if result.Placement != nil {
		m.CarthagePath = result.Placement.CarthagePath
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal release manifest: %w", err)
	}
	path := filepath.Join(opts.OutputDir, "release-manifest.json")
	if err := xos.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write release manifest: %w", err)
	}
	return nil
}
