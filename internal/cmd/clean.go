package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dosanma1/firebase-release-cli/internal/pipeline"
	"github.com/dosanma1/firebase-release-cli/internal/ui"
)

var (
	cleanDeep     bool
	cleanCacheDir string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build caches",
	Long: `Remove the release build cache without running a build.

The package command does this automatically before every run; clean exists
for freeing disk space between releases. Use --deep to additionally remove
the global CocoaPods caches, with confirmation.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanDeep, "deep", false, "Also remove global CocoaPods caches (requires confirmation)")
	cleanCmd.Flags().StringVar(&cleanCacheDir, "cache-dir", "", "Override the build cache location")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cacheDir := cleanCacheDir
	if cacheDir == "" {
		var err error
		cacheDir, err = pipeline.DefaultCacheDir()
		if err != nil {
			return err
		}
	}

	fmt.Printf("%s Removing %s...\n", ui.IconTrash, cacheDir)
	if err := pipeline.InvalidateCache(cacheDir); err != nil {
		return err
	}

	if cleanDeep {
		if err := cleanGlobalCaches(); err != nil {
			return err
		}
	}

	fmt.Printf("%s Clean completed\n", ui.IconSuccess)
	return nil
}

func cleanGlobalCaches() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	globalCaches := []string{
		filepath.Join(homeDir, "Library", "Caches", "CocoaPods"),
		filepath.Join(homeDir, ".cocoapods", "repos"),
	}

	fmt.Println("\nDeep clean will remove the following global caches:")
	for _, cache := range globalCaches {
		if info, err := os.Stat(cache); err == nil && info.IsDir() {
			fmt.Printf("   - %s\n", cache)
		}
	}

	confirmed, err := ui.AskConfirm("Remove global caches? Future builds will be slower.", false)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Cancelled.")
		return nil
	}

	for _, cache := range globalCaches {
		if _, err := os.Stat(cache); err == nil {
			fmt.Printf("%s Removing %s...\n", ui.IconTrash, cache)
			if err := os.RemoveAll(cache); err != nil {
				fmt.Println(ui.WarningStyle.Render(fmt.Sprintf("   %s Failed to remove %s: %v", ui.IconWarning, cache, err)))
			}
		}
	}

	return nil
}
