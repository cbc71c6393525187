package zipbuild

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// manifestName is the file the build tool writes into the project dir
// describing what it produced.
const manifestName = "build-manifest.json"

// ExecBuilder runs the external zipbuilder binary.
type ExecBuilder struct {
	binPath string
}

// NewExecBuilder locates the zipbuilder binary on PATH.
func NewExecBuilder() (*ExecBuilder, error) {
	binPath, err := exec.LookPath("zipbuilder")
	if err != nil {
		return nil, fmt.Errorf("zipbuilder not found: %w", err)
	}
	return &ExecBuilder{binPath: binPath}, nil
}

// Name identifies the builder in progress output.
func (b *ExecBuilder) Name() string {
	return "zipbuilder"
}

// Build invokes the build tool and reads back the manifest it writes.
func (b *ExecBuilder) Build(ctx context.Context, opts *Options) (*Artifacts, error) {
	args := []string{
		"--template-dir", opts.TemplateDir,
		"--project-dir", opts.ProjectDir,
	}
	if opts.AllSDKsPath != "" {
		args = append(args, "--all-sdks-path", opts.AllSDKsPath)
	}
	if opts.CurrentReleasePath != "" {
		args = append(args, "--current-release-path", opts.CurrentReleasePath)
	}
	if opts.LogsDir != "" {
		args = append(args, "--logs-dir", opts.LogsDir)
	}
	for _, repo := range opts.CustomSpecRepos {
		args = append(args, "--spec-repo", repo)
	}

	cmd := exec.CommandContext(ctx, b.binPath, args...)
	cmd.Dir = opts.ProjectDir
	if opts.Verbose {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}

	return readManifest(filepath.Join(opts.ProjectDir, manifestName))
}

// manifest mirrors the JSON the build tool writes on success.
type manifest struct {
	Version             string `json:"version"`
	OutputDir           string `json:"outputDir"`
	CarthageDiagnostics string `json:"carthageDiagnostics"`
}

func readManifest(path string) (*Artifacts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build manifest: %w", err)
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse build manifest: %w", err)
	}
	if m.Version == "" || m.OutputDir == "" {
		return nil, fmt.Errorf("build manifest at %s is incomplete", path)
	}
	return &Artifacts{
		FirebaseVersion:     m.Version,
		OutputDir:           m.OutputDir,
		CarthageDiagnostics: m.CarthageDiagnostics,
	}, nil
}
