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
	manifestBase   string
	manifestOut    string
	manifestDiff   string
	manifestFormat string
)

// manifestCmd represents the manifest command.
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Snapshot the content manifest or diff it against a saved one",
	Long: `Walk the content directories (src/data/ and src/content/ by default)
and record every file's absolute path and last-modified time.

Storing manifests between runs is the caller's job: --out writes the
snapshot as JSON, and --diff compares a previously written snapshot
against the current tree, classifying every path as added, modified, or
deleted. Any timestamp difference counts as modified.

Examples:
  sitecheck manifest --out .manifest.json
  sitecheck manifest --diff .manifest.json
  sitecheck manifest --diff .manifest.json --format json`,
	RunE: runManifestCommand,
}

func init() {
	rootCmd.AddCommand(manifestCmd)

	manifestCmd.Flags().StringVar(&manifestBase, "base", ".", "Project root to scan")
	manifestCmd.Flags().StringVar(&manifestOut, "out", "", "Write the manifest snapshot to this file")
	manifestCmd.Flags().StringVar(&manifestDiff, "diff", "", "Diff the current tree against this saved snapshot")
	manifestCmd.Flags().StringVarP(&manifestFormat, "format", "f", "text", "Output format for diffs (text, json)")
	AddFlagValidation(manifestCmd, "format", ValidateFormat("text", "json"))
	AddFlagValidation(manifestCmd, "base", ValidateDirExists)
}

func runManifestCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	manifest := content.GenerateManifest(manifestBase, cfg.Content.ManifestRoots, cfg.Content.ExcludePatterns)

	if manifestDiff != "" {
		old, err := content.ReadManifest(manifestDiff)
		if err != nil {
			return fmt.Errorf("failed to read snapshot %s: %w", manifestDiff, err)
		}

		changes := content.DetectChanges(old, manifest)
		switch manifestFormat {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(changes); err != nil {
				return err
			}
		case "text":
			fmt.Print(tui.RenderChanges(changes))
		default:
			return fmt.Errorf("unsupported format: %s", manifestFormat)
		}
	}

	if manifestOut != "" {
		if err := content.WriteManifest(manifestOut, manifest); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d entries to %s\n", len(manifest), manifestOut)
		return nil
	}

	if manifestDiff == "" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(manifest)
	}
	return nil
}
