package buildcheck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// minifySampleSize caps how many files per type the minification check
// reads. Sampling short-circuits on the first failing file.
const minifySampleSize = 3

// TypeStats aggregates the assets of one type.
type TypeStats struct {
	Count       int     `json:"count"`
	TotalSize   int64   `json:"total_size_bytes"`
	AverageSize float64 `json:"average_size_bytes"`
}

// Report is the result of analyzing one build-output directory.
type Report struct {
	Dir       string    `json:"dir"`
	Timestamp time.Time `json:"timestamp"`

	Assets []AssetInfo             `json:"assets"`
	Stats  map[AssetType]TypeStats `json:"stats"`

	// Optimization checks
	AllAssetsHashed bool `json:"all_assets_hashed"`
	HTMLMinified    bool `json:"html_minified"`
	CSSMinified     bool `json:"css_minified"`
	JSMinified      bool `json:"js_minified"`

	// HTMLParseWarnings lists sampled HTML assets that failed to
	// tokenize cleanly. Advisory only; never gates validity.
	HTMLParseWarnings []string `json:"html_parse_warnings,omitempty"`
}

// ValidationOutcome converts a report's optimization flags into a
// pass/fail result with human-readable errors.
type ValidationOutcome struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Options configures an Analyzer.
type Options struct {
	// Thresholds for the minification heuristics. Zero value means
	// DefaultThresholds.
	Thresholds Thresholds
	// AssetsSegment is the path segment under which css/js must carry
	// content hashes. Defaults to "assets".
	AssetsSegment string
	// ExcludePatterns are doublestar globs skipped during collection.
	ExcludePatterns []string
}

// Analyzer walks build output and produces reports.
type Analyzer struct {
	thresholds    Thresholds
	assetsSegment string
	exclude       []string
}

// NewAnalyzer creates an analyzer with the given options.
func NewAnalyzer(opts Options) *Analyzer {
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = DefaultThresholds()
	}
	if opts.AssetsSegment == "" {
		opts.AssetsSegment = "assets"
	}
	return &Analyzer{
		thresholds:    opts.Thresholds,
		assetsSegment: opts.AssetsSegment,
		exclude:       opts.ExcludePatterns,
	}
}

// GenerateReport collects every file under dir, buckets them by type,
// samples minification for html/css/js, and checks that every css/js
// asset under the assets segment carries a content hash (vacuously true
// when there are none).
func (a *Analyzer) GenerateReport(dir string) *Report {
	report := &Report{
		Dir:       dir,
		Timestamp: time.Now(),
		Assets:    CollectFiles(dir, a.exclude),
		Stats:     make(map[AssetType]TypeStats),
	}

	for _, asset := range report.Assets {
		stats := report.Stats[asset.Type]
		stats.Count++
		stats.TotalSize += asset.Size
		report.Stats[asset.Type] = stats
	}
	for assetType, stats := range report.Stats {
		if stats.Count > 0 {
			stats.AverageSize = float64(stats.TotalSize) / float64(stats.Count)
			report.Stats[assetType] = stats
		}
	}

	report.AllAssetsHashed = a.checkAssetHashes(report.Assets)
	report.HTMLMinified = a.checkMinified(dir, report, AssetHTML)
	report.CSSMinified = a.checkMinified(dir, report, AssetCSS)
	report.JSMinified = a.checkMinified(dir, report, AssetJS)

	return report
}

// checkAssetHashes requires a content hash on every css/js asset living
// under the assets path segment. Assets elsewhere (index.html at the
// root, for instance) are allowed to keep stable names.
func (a *Analyzer) checkAssetHashes(assets []AssetInfo) bool {
	for _, asset := range assets {
		if asset.Type != AssetCSS && asset.Type != AssetJS {
			continue
		}
		if !a.underAssetsSegment(asset.Path) {
			continue
		}
		if !asset.HasHash {
			return false
		}
	}
	return true
}

func (a *Analyzer) underAssetsSegment(relPath string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(filepath.Dir(relPath)), "/") {
		if segment == a.assetsSegment {
			return true
		}
	}
	return false
}

// checkMinified samples up to the first minifySampleSize readable files
// of the given type and short-circuits to false on the first one that
// fails its heuristic. An unreadable file is skipped without consuming a
// sample slot. For HTML samples it also runs the tokenizer probe and
// records warnings on the report.
func (a *Analyzer) checkMinified(dir string, report *Report, assetType AssetType) bool {
	sampled := 0
	for _, asset := range report.Assets {
		if asset.Type != assetType {
			continue
		}
		if sampled >= minifySampleSize {
			break
		}

		raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(asset.Path)))
		if err != nil {
			continue
		}
		sampled++
		content := string(raw)

		switch assetType {
		case AssetHTML:
			if !wellFormedHTML(content) {
				report.HTMLParseWarnings = append(report.HTMLParseWarnings,
					fmt.Sprintf("%s: tokenizer error before end of document", asset.Path))
			}
			if !a.thresholds.IsHTMLMinified(content) {
				return false
			}
		case AssetCSS:
			if !a.thresholds.IsCSSMinified(content) {
				return false
			}
		case AssetJS:
			if !a.thresholds.IsJSMinified(content) {
				return false
			}
		}
	}
	return true
}

// wellFormedHTML runs the streaming tokenizer over the document and
// reports whether it reached EOF without a tokenizer error.
func wellFormedHTML(content string) bool {
	tokenizer := html.NewTokenizer(strings.NewReader(content))
	for {
		if tokenizer.Next() == html.ErrorToken {
			return errors.Is(tokenizer.Err(), io.EOF)
		}
	}
}

// ValidateOptimization generates a report for dir and converts each
// failed optimization check into an error string. Valid is true iff the
// error list is empty.
func (a *Analyzer) ValidateOptimization(dir string) (ValidationOutcome, *Report) {
	report := a.GenerateReport(dir)

	outcome := ValidationOutcome{Errors: make([]string, 0)}
	if !report.AllAssetsHashed {
		outcome.Errors = append(outcome.Errors,
			fmt.Sprintf("css/js assets under %s/ are missing content hashes", a.assetsSegment))
	}
	if !report.HTMLMinified {
		outcome.Errors = append(outcome.Errors, "html assets are not minified")
	}
	if !report.CSSMinified {
		outcome.Errors = append(outcome.Errors, "css assets are not minified")
	}
	if !report.JSMinified {
		outcome.Errors = append(outcome.Errors, "js assets are not minified")
	}

	outcome.Valid = len(outcome.Errors) == 0
	return outcome, report
}
