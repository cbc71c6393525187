// Package pipeline sequences the release assembly: cache invalidation, the
// external SDK build, bundle relocation, optional Carthage packaging,
// archive creation and output placement. Every failure is fatal; a
// half-finished release must never look like a success.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dosanma1/firebase-release-cli/internal/archive"
	"github.com/dosanma1/firebase-release-cli/internal/carthage"
	"github.com/dosanma1/firebase-release-cli/internal/cocoapods"
	"github.com/dosanma1/firebase-release-cli/internal/logs"
	"github.com/dosanma1/firebase-release-cli/internal/output"
	"github.com/dosanma1/firebase-release-cli/internal/relocate"
	"github.com/dosanma1/firebase-release-cli/internal/zipbuild"
)

// Options is the parsed launch configuration. It is built once by the CLI
// layer and read-only afterwards; empty strings and nil pointers mean the
// corresponding step is skipped.
type Options struct {
	UpdatePodRepo      bool
	TemplateDir        string
	AllSDKsPath        string
	CurrentReleasePath string
	LogsDir            string
	OutputDir          string
	CarthageDir        string
	CarthageJSONDir    string
	RCNumber           *int
	CustomSpecRepos    []string
	CacheDir           string
	FollowLogs         bool
	Verbose            bool
}

// Result describes a completed release.
type Result struct {
	Version     string
	ArchivePath string
	// Placement is nil when no output dir was requested and the archive was
	// left next to the build output.
	Placement *output.Placement

	Elapsed        time.Duration
	PodRepoElapsed time.Duration
}

// CandidateName returns the archive file name for a release:
// "Firebase-<version>.zip", with an "-rc<N>" qualifier for release
// candidates.
func CandidateName(version string, rcNumber *int) string {
	if rcNumber != nil {
		return fmt.Sprintf("Firebase-%s-rc%d.zip", version, *rcNumber)
	}
	return fmt.Sprintf("Firebase-%s.zip", version)
}

// Run executes the whole pipeline. The elapsed time is printed on every
// exit path, success or failure, so build-machine logs always show how far
// a run got and how long it took.
func Run(ctx context.Context, builder zipbuild.Builder, opts Options) (result *Result, err error) {
	start := time.Now()
	var podRepoElapsed time.Duration
	defer func() {
		elapsed := time.Since(start)
		// Only report the sync timing once the sync actually completed; a
		// failed update has no meaningful duration.
		if podRepoElapsed > 0 {
			fmt.Printf("⏱️  Pod repo update took %s\n", podRepoElapsed.Round(time.Second))
		}
		if err != nil {
			fmt.Printf("⏱️  Release failed after %s\n", elapsed.Round(time.Second))
			return
		}
		fmt.Printf("⏱️  Release completed in %s\n", elapsed.Round(time.Second))
		result.Elapsed = elapsed
		result.PodRepoElapsed = podRepoElapsed
	}()

	fmt.Println("🗑️  Step 1: Invalidating build cache...")
	if err := InvalidateCache(opts.CacheDir); err != nil {
		return nil, fmt.Errorf("failed to remove cache: %w", err)
	}

	if opts.UpdatePodRepo {
		fmt.Println("🔄 Step 2: Updating CocoaPods spec repos...")
		updater, err := cocoapods.NewRepoUpdater(opts.Verbose)
		if err != nil {
			return nil, err
		}
		podStart := time.Now()
		if err := updater.Update(ctx, opts.CustomSpecRepos); err != nil {
			return nil, err
		}
		podRepoElapsed = time.Since(podStart)
	}

	fmt.Printf("🔨 Step 3: Building release with %s...\n", builder.Name())
	artifacts, err := runBuild(ctx, builder, opts)
	if err != nil {
		return nil, err
	}
	fmt.Printf("   Built Firebase %s\n", artifacts.FirebaseVersion)

	fmt.Println("📦 Step 4: Relocating resource bundles...")
	moved, err := relocate.Bundles(artifacts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resource relocation failed: %w", err)
	}
	fmt.Printf("   Relocated %d bundle(s)\n", moved)

	if opts.CarthageDir != "" {
		fmt.Println("🎯 Step 5: Generating Carthage distribution...")
		err := carthage.Generate(carthage.Options{
			SourceDir:       artifacts.OutputDir,
			TemplateDir:     opts.TemplateDir,
			JSONDir:         opts.CarthageJSONDir,
			Version:         artifacts.FirebaseVersion,
			RCNumber:        opts.RCNumber,
			DiagnosticsPath: artifacts.CarthageDiagnostics,
			OutputDir:       opts.CarthageDir,
		})
		if err != nil {
			return nil, fmt.Errorf("carthage packaging failed: %w", err)
		}
	}

	candidate := CandidateName(artifacts.FirebaseVersion, opts.RCNumber)
	archivePath := filepath.Join(filepath.Dir(artifacts.OutputDir), candidate)
	fmt.Printf("🗜️  Step 6: Creating %s...\n", candidate)
	if err := archive.Create(artifacts.OutputDir, archivePath); err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}

	result = &Result{
		Version:     artifacts.FirebaseVersion,
		ArchivePath: archivePath,
	}

	if opts.OutputDir == "" {
		fmt.Printf("✅ Release archive ready at %s\n", archivePath)
		return result, nil
	}

	fmt.Printf("🚚 Step 7: Placing outputs in %s...\n", opts.OutputDir)
	placement, err := output.Place(archivePath, opts.CarthageDir, opts.OutputDir, artifacts.FirebaseVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to place outputs: %w", err)
	}
	result.Placement = placement

	if err := writeManifest(opts, result); err != nil {
		return nil, err
	}

	fmt.Printf("✅ Release archive ready at %s\n", placement.ArchivePath)
	return result, nil
}

// runBuild creates the per-run scratch project dir and invokes the build,
// streaming log files while it runs when requested. The scratch dir is left
// behind on failure so the build can be inspected.
func runBuild(ctx context.Context, builder zipbuild.Builder, opts Options) (*zipbuild.Artifacts, error) {
	projectDir, err := os.MkdirTemp("", "fbrelease-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create project dir: %w", err)
	}

	var follower *logs.Follower
	if opts.FollowLogs && opts.LogsDir != "" {
		follower, err = logs.NewFollower(opts.LogsDir, os.Stdout)
		if err != nil {
			// Following is best effort; the build itself still captures logs.
			fmt.Printf("⚠️  Not following logs: %v\n", err)
		} else {
			follower.Start()
		}
	}

	artifacts, err := builder.Build(ctx, &zipbuild.Options{
		TemplateDir:        opts.TemplateDir,
		AllSDKsPath:        opts.AllSDKsPath,
		CurrentReleasePath: opts.CurrentReleasePath,
		LogsDir:            opts.LogsDir,
		ProjectDir:         projectDir,
		CustomSpecRepos:    opts.CustomSpecRepos,
		Verbose:            opts.Verbose,
	})
	if follower != nil {
		follower.Stop()
	}
	if err != nil {
		return nil, fmt.Errorf("build failed in %s: %w", projectDir, err)
	}
	return artifacts, nil
}
