package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/content"
	"github.com/sitecheck/sitecheck/internal/tui"
)

var (
	validateBase   string
	validateFormat string
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate all content files against their schemas",
	Long: `Validate every content file reachable under the project root:

- src/data/resume.yaml, testimonials.yaml, repositories.yaml,
  publications.yaml (when present; missing optional files are skipped)
- every Markdown/MDX product entry under src/data/products/

All constraint violations for a file are reported together, so a content
author sees every problem in one pass. Exits non-zero when any file is
invalid.

Examples:
  sitecheck validate                  # Validate the current project
  sitecheck validate --base ../site   # Validate another project root
  sitecheck validate --format json    # Output the report as JSON`,
	RunE: runValidateCommand,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateBase, "base", ".", "Project root to validate")
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "text", "Output format (text, json)")
	AddFlagValidation(validateCmd, "format", ValidateFormat("text", "json"))
	AddFlagValidation(validateCmd, "base", ValidateDirExists)
}

func runValidateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger("validate")
	op := logger.StartOperation("validate-content")

	validator := content.NewValidator(cfg.Content.DataDir, cfg.Content.ProductsDir)
	report := validator.ValidateAll(validateBase)

	switch validateFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return err
		}
	case "text":
		fmt.Print(tui.RenderContentReport(report))
	default:
		return fmt.Errorf("unsupported format: %s", validateFormat)
	}

	if !report.Success {
		err := fmt.Errorf("content validation failed: %d invalid file(s)", report.Summary.Invalid)
		op.EndWithError(cmd.Context(), err)
		return err
	}
	op.End(cmd.Context())
	return nil
}
