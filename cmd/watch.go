package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/content"
	siteerrors "github.com/sitecheck/sitecheck/internal/errors"
	"github.com/sitecheck/sitecheck/internal/tui"
	"github.com/sitecheck/sitecheck/internal/watcher"
)

var watchBase string

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate content on every change",
	Long: `Watch the content directories and run a full content validation after
every debounced batch of changes. Runs until interrupted.

Example:
  sitecheck watch --base ../site`,
	RunE: runWatchCommand,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchBase, "base", ".", "Project root to watch")
	AddFlagValidation(watchCmd, "base", ValidateDirExists)
}

func runWatchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger("watch")
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	debounce := time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond
	contentWatcher, err := watcher.NewContentWatcher(debounce)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer contentWatcher.Stop()

	contentWatcher.AddFilter(watcher.ContentFilter)
	contentWatcher.AddFilter(watcher.NoDotfileFilter)

	for _, root := range cfg.Content.ManifestRoots {
		dir := filepath.Join(watchBase, root)
		if err := contentWatcher.AddRecursive(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	validator := content.NewValidator(cfg.Content.DataDir, cfg.Content.ProductsDir)

	contentWatcher.AddHandler(func(events []watcher.ChangeEvent) error {
		for _, event := range events {
			logger.Debug(ctx, "content change", "path", event.Path, "type", event.Type.String())
		}

		report := validator.ValidateAll(watchBase)
		fmt.Print(tui.RenderContentReport(report))
		if report.Success {
			logger.Info(ctx, "content valid", "files", report.Summary.Total)
			return nil
		}

		for _, cerr := range validator.Collector().Errors() {
			if siteerrors.IsKind(cerr, siteerrors.KindSchema) {
				logger.Warn(ctx, nil, "schema violations",
					"path", cerr.Path,
					"violations", len(cerr.Violations),
				)
				continue
			}
			logger.Warn(ctx, cerr, "content error", "path", cerr.Path, "kind", cerr.Kind.String())
		}
		logger.Warn(ctx, nil, "content invalid",
			"files", report.Summary.Total,
			"invalid", report.Summary.Invalid,
		)
		return nil
	})

	contentWatcher.Start(ctx)

	// Validate once up front so the first report doesn't wait for a change
	report := validator.ValidateAll(watchBase)
	fmt.Print(tui.RenderContentReport(report))

	logger.Info(ctx, "watching for content changes", "roots", cfg.Content.ManifestRoots)
	<-ctx.Done()
	return nil
}
