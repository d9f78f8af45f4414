// Package config provides configuration management for sitecheck using
// Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files and environment variable
// overrides with the SITECHECK_ prefix. It manages the content-tree layout
// (data directory, products directory, manifest scan roots), the build
// output location, exclude patterns, minification thresholds, and
// watch-mode settings.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Content ContentConfig `yaml:"content"`
	Build   BuildConfig   `yaml:"build"`
	Watch   WatchConfig   `yaml:"watch"`
}

// ContentConfig describes where content files live relative to the
// project root. Defaults mirror the site's src/ layout.
type ContentConfig struct {
	DataDir         string   `yaml:"data_dir"`
	ProductsDir     string   `yaml:"products_dir"`
	ManifestRoots   []string `yaml:"manifest_roots"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
}

// BuildConfig describes the build-output tree and the optimization
// thresholds applied to it. The ratio thresholds are heuristics, not exact
// laws; they are configuration so an operator can tune them per site.
type BuildConfig struct {
	OutputDir          string  `yaml:"output_dir"`
	AssetsSegment      string  `yaml:"assets_segment"`
	HTMLNewlineRatio   float64 `yaml:"html_newline_ratio"`
	CSSWhitespaceRatio float64 `yaml:"css_whitespace_ratio"`
	JSNoiseRatio       float64 `yaml:"js_noise_ratio"`
	HTMLTrivialBytes   int     `yaml:"html_trivial_bytes"`
	JSTrivialBytes     int     `yaml:"js_trivial_bytes"`
}

// WatchConfig controls the continuous-validation mode.
type WatchConfig struct {
	DebounceMillis int `yaml:"debounce_ms"`
}

// setDefaults registers every configuration key with viper so explicit
// values always win, including explicit zeros (no zero-as-unset
// sentinels).
func setDefaults() {
	viper.SetDefault("content.data_dir", "src/data")
	viper.SetDefault("content.manifest_roots", []string{"src/data", "src/content"})
	viper.SetDefault("content.exclude_patterns", []string{})
	viper.SetDefault("build.output_dir", "dist")
	viper.SetDefault("build.assets_segment", "assets")
	viper.SetDefault("build.html_newline_ratio", 0.02)
	viper.SetDefault("build.css_whitespace_ratio", 0.001)
	viper.SetDefault("build.js_noise_ratio", 0.005)
	viper.SetDefault("build.html_trivial_bytes", 200)
	viper.SetDefault("build.js_trivial_bytes", 100)
	viper.SetDefault("watch.debounce_ms", 300)
}

func Load() (*Config, error) {
	setDefaults()

	config := Config{
		Content: ContentConfig{
			DataDir:         viper.GetString("content.data_dir"),
			ProductsDir:     viper.GetString("content.products_dir"),
			ManifestRoots:   viper.GetStringSlice("content.manifest_roots"),
			ExcludePatterns: viper.GetStringSlice("content.exclude_patterns"),
		},
		Build: BuildConfig{
			OutputDir:          viper.GetString("build.output_dir"),
			AssetsSegment:      viper.GetString("build.assets_segment"),
			HTMLNewlineRatio:   viper.GetFloat64("build.html_newline_ratio"),
			CSSWhitespaceRatio: viper.GetFloat64("build.css_whitespace_ratio"),
			JSNoiseRatio:       viper.GetFloat64("build.js_noise_ratio"),
			HTMLTrivialBytes:   viper.GetInt("build.html_trivial_bytes"),
			JSTrivialBytes:     viper.GetInt("build.js_trivial_bytes"),
		},
		Watch: WatchConfig{
			DebounceMillis: viper.GetInt("watch.debounce_ms"),
		},
	}

	// The products dir tracks the data dir unless set explicitly
	if config.Content.ProductsDir == "" {
		config.Content.ProductsDir = filepath.Join(config.Content.DataDir, "products")
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validatePath(config.Content.DataDir); err != nil {
		return fmt.Errorf("content config: invalid data_dir '%s': %w", config.Content.DataDir, err)
	}
	if err := validatePath(config.Content.ProductsDir); err != nil {
		return fmt.Errorf("content config: invalid products_dir '%s': %w", config.Content.ProductsDir, err)
	}
	for _, root := range config.Content.ManifestRoots {
		if err := validatePath(root); err != nil {
			return fmt.Errorf("content config: invalid manifest root '%s': %w", root, err)
		}
	}
	if err := validatePath(config.Build.OutputDir); err != nil {
		return fmt.Errorf("build config: invalid output_dir '%s': %w", config.Build.OutputDir, err)
	}

	if config.Build.HTMLNewlineRatio < 0 || config.Build.HTMLNewlineRatio > 1 {
		return fmt.Errorf("build config: html_newline_ratio %g is not in range 0-1", config.Build.HTMLNewlineRatio)
	}
	if config.Build.CSSWhitespaceRatio < 0 || config.Build.CSSWhitespaceRatio > 1 {
		return fmt.Errorf("build config: css_whitespace_ratio %g is not in range 0-1", config.Build.CSSWhitespaceRatio)
	}
	if config.Build.JSNoiseRatio < 0 || config.Build.JSNoiseRatio > 1 {
		return fmt.Errorf("build config: js_noise_ratio %g is not in range 0-1", config.Build.JSNoiseRatio)
	}
	if config.Watch.DebounceMillis < 0 {
		return fmt.Errorf("watch config: debounce_ms must be non-negative")
	}

	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	// Reject path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	// Reject dangerous characters
	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
