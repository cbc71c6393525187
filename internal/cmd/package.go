package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dosanma1/firebase-release-cli/internal/config"
	"github.com/dosanma1/firebase-release-cli/internal/pipeline"
	"github.com/dosanma1/firebase-release-cli/internal/ui"
	"github.com/dosanma1/firebase-release-cli/internal/zipbuild"
)

var (
	packageUpdatePodRepo   bool
	packageTemplateDir     string
	packageAllSDKsPath     string
	packageCurrentRelease  string
	packageLogsDir         string
	packageOutputDir       string
	packageCarthageDir     string
	packageCarthageJSON    string
	packageRCNumber        int
	packageCustomSpecRepos []string
	packageConfigPath      string
	packageCacheDir        string
	packageFollowLogs      bool
	packageVerbose         bool
)

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Build and assemble a Firebase SDK release",
	Long: `Run the full release assembly pipeline.

The pipeline invalidates the build cache, optionally updates CocoaPods spec
repos, runs the external zip build, relocates resource bundles into each
product's Resources directory, optionally generates a Carthage distribution,
compresses the release and places it under <output-dir>/<version>.

Examples:
  fbrelease package --template-dir ./ReleaseTooling/Template
  fbrelease package --template-dir ./Template --output-dir /out
  fbrelease package --template-dir ./Template --carthage-dir /carthage \
      --rc-number 2 --update-pod-repo`,
	RunE: runPackage,
}

func init() {
	rootCmd.AddCommand(packageCmd)
	packageCmd.Flags().BoolVar(&packageUpdatePodRepo, "update-pod-repo", false, "Update CocoaPods spec repos before building")
	packageCmd.Flags().StringVar(&packageTemplateDir, "template-dir", "", "Template project directory (required)")
	packageCmd.Flags().StringVar(&packageAllSDKsPath, "all-sdks-path", "", "Override for the all-SDKs podspec directory")
	packageCmd.Flags().StringVar(&packageCurrentRelease, "current-release-path", "", "Override for the current-release podspec directory")
	packageCmd.Flags().StringVar(&packageLogsDir, "logs-dir", "", "Directory to capture build logs in")
	packageCmd.Flags().StringVar(&packageOutputDir, "output-dir", "", "Directory to place the final artifacts in")
	packageCmd.Flags().StringVar(&packageCarthageDir, "carthage-dir", "", "Directory to generate the Carthage distribution in")
	packageCmd.Flags().StringVar(&packageCarthageJSON, "carthage-json-dir", "", "Directory holding Carthage binary project specs")
	packageCmd.Flags().IntVar(&packageRCNumber, "rc-number", 0, "Release candidate number")
	packageCmd.Flags().StringSliceVar(&packageCustomSpecRepos, "custom-spec-repos", nil, "Additional CocoaPods spec repos")
	packageCmd.Flags().StringVar(&packageConfigPath, "config", "", "Path to .fbrelease.yaml")
	packageCmd.Flags().StringVar(&packageCacheDir, "cache-dir", "", "Override the build cache location")
	packageCmd.Flags().BoolVar(&packageFollowLogs, "follow-logs", false, "Stream build log files while the build runs")
	packageCmd.Flags().BoolVarP(&packageVerbose, "verbose", "v", false, "Show build tool output")
}

func runPackage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(packageConfigPath)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		UpdatePodRepo:      packageUpdatePodRepo,
		TemplateDir:        config.Resolve(packageTemplateDir, cfg.Paths.TemplateDir),
		AllSDKsPath:        config.Resolve(packageAllSDKsPath, cfg.Paths.AllSDKsDir),
		CurrentReleasePath: config.Resolve(packageCurrentRelease, cfg.Paths.CurrentReleaseDir),
		LogsDir:            config.Resolve(packageLogsDir, cfg.Paths.LogsDir),
		OutputDir:          config.Resolve(packageOutputDir, cfg.Paths.OutputDir),
		CarthageDir:        config.Resolve(packageCarthageDir, cfg.Carthage.Dir),
		CarthageJSONDir:    config.Resolve(packageCarthageJSON, cfg.Carthage.JSONDir),
		CustomSpecRepos:    config.ResolveList(packageCustomSpecRepos, cfg.PodRepos),
		CacheDir:           config.Resolve(packageCacheDir, cfg.Paths.CacheDir),
		FollowLogs:         packageFollowLogs,
		Verbose:            packageVerbose,
	}

	if opts.TemplateDir == "" {
		return fmt.Errorf("--template-dir is required (or set paths.template_dir in %s)", config.DefaultFileName)
	}
	if opts.CarthageDir != "" && opts.CarthageJSONDir == "" {
		return fmt.Errorf("--carthage-dir requires --carthage-json-dir")
	}

	// Zero is a valid rc number only when the flag was given explicitly.
	if cmd.Flags().Changed("rc-number") {
		rc := packageRCNumber
		opts.RCNumber = &rc
	}

	builder, err := zipbuild.NewExecBuilder()
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cmd.Context(), builder, opts)
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("%s Release failed", ui.IconError)))
		return err
	}

	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("%s Firebase %s released", ui.IconFire, result.Version)))
	return nil
}

// loadConfig loads the YAML config from path, falling back to the default
// file in the working directory.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.LoadDefault()
}
