package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dosanma1/firebase-release-cli/internal/carthage"
	"github.com/dosanma1/firebase-release-cli/internal/config"
	"github.com/dosanma1/firebase-release-cli/internal/ui"
)

var (
	validateJSONDir    string
	validateConfigPath string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate release inputs without building",
	Long: `Validates the Carthage JSON specs and the .fbrelease.yaml config.

A malformed binary project spec breaks every downstream Carthage user, so
this runs the same schema validation the package command applies before
generating a distribution.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateJSONDir, "carthage-json-dir", "", "Directory holding Carthage binary project specs")
	validateCmd.Flags().StringVar(&validateConfigPath, "config", "", "Path to .fbrelease.yaml")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateJSONDir == "" && validateConfigPath == "" {
		return fmt.Errorf("nothing to validate: pass --carthage-json-dir and/or --config")
	}

	if validateConfigPath != "" {
		fmt.Printf("🔍 Validating %s...\n", validateConfigPath)
		if _, err := config.Load(validateConfigPath); err != nil {
			return err
		}
		fmt.Printf("%s Config is valid\n", ui.IconSuccess)
	}

	if validateJSONDir != "" {
		fmt.Printf("🔍 Validating Carthage specs in %s...\n", validateJSONDir)
		if err := carthage.ValidateJSONDir(validateJSONDir); err != nil {
			return err
		}
		fmt.Printf("%s Carthage specs are valid\n", ui.IconSuccess)
	}

	return nil
}
