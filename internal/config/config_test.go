package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "src/data", config.Content.DataDir)
	assert.Equal(t, "src/data/products", config.Content.ProductsDir)
	assert.Equal(t, []string{"src/data", "src/content"}, config.Content.ManifestRoots)
	assert.Empty(t, config.Content.ExcludePatterns)

	assert.Equal(t, "dist", config.Build.OutputDir)
	assert.Equal(t, "assets", config.Build.AssetsSegment)
	assert.InDelta(t, 0.02, config.Build.HTMLNewlineRatio, 1e-9)
	assert.InDelta(t, 0.001, config.Build.CSSWhitespaceRatio, 1e-9)
	assert.InDelta(t, 0.005, config.Build.JSNoiseRatio, 1e-9)
	assert.Equal(t, 200, config.Build.HTMLTrivialBytes)
	assert.Equal(t, 100, config.Build.JSTrivialBytes)

	assert.Equal(t, 300, config.Watch.DebounceMillis)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("content.data_dir", "content/data")
	viper.Set("content.manifest_roots", []string{"content"})
	viper.Set("content.exclude_patterns", []string{"**/*.bak"})
	viper.Set("build.output_dir", "public")
	viper.Set("build.html_newline_ratio", 0.05)
	viper.Set("watch.debounce_ms", 500)

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "content/data", config.Content.DataDir)
	assert.Equal(t, "content/data/products", config.Content.ProductsDir)
	assert.Equal(t, []string{"content"}, config.Content.ManifestRoots)
	assert.Equal(t, []string{"**/*.bak"}, config.Content.ExcludePatterns)
	assert.Equal(t, "public", config.Build.OutputDir)
	assert.InDelta(t, 0.05, config.Build.HTMLNewlineRatio, 1e-9)
	assert.Equal(t, 500, config.Watch.DebounceMillis)
}

func TestLoadKeepsExplicitZeros(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("build.html_newline_ratio", 0.0)
	viper.Set("build.css_whitespace_ratio", 0.0)
	viper.Set("build.js_noise_ratio", 0.0)
	viper.Set("build.html_trivial_bytes", 0)
	viper.Set("build.js_trivial_bytes", 0)
	viper.Set("watch.debounce_ms", 0)

	config, err := Load()
	require.NoError(t, err)

	// An operator disabling a threshold must not be snapped back to the
	// default
	assert.Zero(t, config.Build.HTMLNewlineRatio)
	assert.Zero(t, config.Build.CSSWhitespaceRatio)
	assert.Zero(t, config.Build.JSNoiseRatio)
	assert.Zero(t, config.Build.HTMLTrivialBytes)
	assert.Zero(t, config.Build.JSTrivialBytes)
	assert.Zero(t, config.Watch.DebounceMillis)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"traversal in data dir", "content.data_dir", "../../etc"},
		{"dangerous character in output dir", "build.output_dir", "dist;rm -rf"},
		{"ratio above one", "build.html_newline_ratio", 1.5},
		{"negative ratio", "build.js_noise_ratio", -0.1},
		{"negative debounce", "watch.debounce_ms", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			viper.Set(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, validatePath("src/data"))
	assert.NoError(t, validatePath("dist"))

	assert.Error(t, validatePath(""))
	assert.Error(t, validatePath("../outside"))
	assert.Error(t, validatePath("dir|pipe"))
	assert.Error(t, validatePath("dir$(cmd)"))
}
