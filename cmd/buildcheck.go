package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitecheck/sitecheck/internal/buildcheck"
	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/tui"
)

var buildcheckFormat string

// buildcheckCmd represents the buildcheck command.
var buildcheckCmd = &cobra.Command{
	Use:   "buildcheck [dir]",
	Short: "Verify cache-busting and minification of the build output",
	Long: `Walk a static-build output directory, classify every file by type, and
check the optimization expectations:

- every css/js asset under assets/ carries a content hash
- sampled html/css/js files look minified

The directory defaults to the configured build output (dist). Exits
non-zero when any check fails.

Examples:
  sitecheck buildcheck
  sitecheck buildcheck public --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuildcheckCommand,
}

func init() {
	rootCmd.AddCommand(buildcheckCmd)

	buildcheckCmd.Flags().StringVarP(&buildcheckFormat, "format", "f", "text", "Output format (text, json)")
	AddFlagValidation(buildcheckCmd, "format", ValidateFormat("text", "json"))
}

func runBuildcheckCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dir := cfg.Build.OutputDir
	if len(args) > 0 {
		dir = args[0]
	}

	logger := newLogger("buildcheck")
	op := logger.StartOperation("verify-build")

	analyzer := buildcheck.NewAnalyzer(buildcheck.Options{
		Thresholds: buildcheck.Thresholds{
			HTMLNewlineRatio:   cfg.Build.HTMLNewlineRatio,
			CSSWhitespaceRatio: cfg.Build.CSSWhitespaceRatio,
			JSNoiseRatio:       cfg.Build.JSNoiseRatio,
			HTMLTrivialBytes:   cfg.Build.HTMLTrivialBytes,
			JSTrivialBytes:     cfg.Build.JSTrivialBytes,
		},
		AssetsSegment:   cfg.Build.AssetsSegment,
		ExcludePatterns: cfg.Content.ExcludePatterns,
	})

	outcome, report := analyzer.ValidateOptimization(dir)

	switch buildcheckFormat {
	case "json":
		payload := struct {
			Outcome buildcheck.ValidationOutcome `json:"outcome"`
			Report  *buildcheck.Report           `json:"report"`
		}{outcome, report}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(payload); err != nil {
			return err
		}
	case "text":
		fmt.Print(tui.RenderBuildReport(report, outcome))
	default:
		return fmt.Errorf("unsupported format: %s", buildcheckFormat)
	}

	if !outcome.Valid {
		err := fmt.Errorf("build optimization failed: %d error(s)", len(outcome.Errors))
		op.EndWithError(cmd.Context(), err)
		return err
	}
	op.End(cmd.Context())
	return nil
}
