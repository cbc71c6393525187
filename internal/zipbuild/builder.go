// Package zipbuild abstracts the external SDK build that produces the
// release tree this tool packages.
package zipbuild

import (
	"context"
)

// Options contains the inputs for one release build.
type Options struct {
	// TemplateDir holds the podspec template project the build starts from.
	TemplateDir string

	// AllSDKsPath and CurrentReleasePath override the default pod versions
	// when set. Empty means the build resolves versions itself.
	AllSDKsPath        string
	CurrentReleasePath string

	// LogsDir receives the build logs when set; empty disables log capture.
	LogsDir string

	// ProjectDir is the per-run scratch directory the build works in.
	ProjectDir string

	// CustomSpecRepos lists additional CocoaPods spec repos to resolve from.
	CustomSpecRepos []string

	// Verbose passes build output through to the terminal.
	Verbose bool
}

// Artifacts is what a successful build hands back to the pipeline.
type Artifacts struct {
	// FirebaseVersion is the dotted semantic version that was built.
	FirebaseVersion string

	// OutputDir is the root of the assembled release tree.
	OutputDir string

	// CarthageDiagnostics is where Carthage packaging should write its
	// summary, alongside the build's own diagnostics.
	CarthageDiagnostics string
}

// Builder is the interface the pipeline builds releases through.
type Builder interface {
	// Name identifies the builder in progress output.
	Name() string

	// Build runs the SDK build and returns the assembled artifacts.
	Build(ctx context.Context, opts *Options) (*Artifacts, error)
}
