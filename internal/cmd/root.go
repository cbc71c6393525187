package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fbrelease",
	Short: "Firebase SDK release packaging",
	Long: `fbrelease assembles a distributable Firebase SDK release from a fresh
build: it invalidates stale caches, drives the external zip build, normalizes
the bundle layout, optionally produces a Carthage distribution, and drops the
versioned archive where the release process expects it.

Every failure is fatal. A partial release is never reported as a success.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}
