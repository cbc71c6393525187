// Package cocoapods wraps the CocoaPods spec repository operations the
// release needs.
package cocoapods

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// RepoUpdater runs `pod repo update` against the master spec repo and any
// custom spec repos.
type RepoUpdater struct {
	podPath string
	verbose bool
}

// NewRepoUpdater locates the pod binary on PATH.
func NewRepoUpdater(verbose bool) (*RepoUpdater, error) {
	podPath, err := exec.LookPath("pod")
	if err != nil {
		return nil, fmt.Errorf("pod not found: %w (install CocoaPods first)", err)
	}
	return &RepoUpdater{podPath: podPath, verbose: verbose}, nil
}

// Update refreshes the default spec repos, then each custom repo by name.
// The operation is idempotent; an already up-to-date repo is a no-op.
func (u *RepoUpdater) Update(ctx context.Context, customRepos []string) error {
	if err := u.run(ctx, "repo", "update"); err != nil {
		return fmt.Errorf("pod repo update failed: %w", err)
	}
	for _, repo := range customRepos {
		if err := u.run(ctx, "repo", "update", repo); err != nil {
			return fmt.Errorf("pod repo update %s failed: %w", repo, err)
		}
	}
	return nil
}

func (u *RepoUpdater) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, u.podPath, args...)
	if u.verbose {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
