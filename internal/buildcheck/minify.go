package buildcheck

import (
	"regexp"
	"strings"
)

// Thresholds holds the minification heuristics. The ratios are
// approximate and content-dependent; operators may tune them through
// configuration, and the defaults are what the checks were calibrated
// against.
type Thresholds struct {
	// HTMLNewlineRatio is the maximum newline-to-character ratio for
	// HTML to count as minified.
	HTMLNewlineRatio float64
	// CSSWhitespaceRatio is the maximum ratio of multi-whitespace runs
	// to characters for CSS to count as minified.
	CSSWhitespaceRatio float64
	// JSNoiseRatio is the maximum ratio of newlines plus comment
	// markers to characters for JS to count as minified.
	JSNoiseRatio float64
	// HTMLTrivialBytes: HTML shorter than this is trivially minified.
	HTMLTrivialBytes int
	// JSTrivialBytes: JS shorter than this is trivially minified.
	JSTrivialBytes int
}

// DefaultThresholds returns the calibrated defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HTMLNewlineRatio:   0.02,
		CSSWhitespaceRatio: 0.001,
		JSNoiseRatio:       0.005,
		HTMLTrivialBytes:   200,
		JSTrivialBytes:     100,
	}
}

var whitespaceRuns = regexp.MustCompile(`\s{2,}`)

// IsHTMLMinified reports whether HTML content looks minified: short
// documents trivially pass, longer ones must stay below roughly one
// newline per fifty characters.
func (t Thresholds) IsHTMLMinified(content string) bool {
	if len(content) < t.HTMLTrivialBytes {
		return true
	}
	newlines := strings.Count(content, "\n")
	return float64(newlines)/float64(len(content)) < t.HTMLNewlineRatio
}

// IsCSSMinified reports whether CSS content looks minified, judged by the
// density of runs of two or more consecutive whitespace characters.
func (t Thresholds) IsCSSMinified(content string) bool {
	if len(content) == 0 {
		return true
	}
	runs := len(whitespaceRuns.FindAllString(content, -1))
	return float64(runs)/float64(len(content)) < t.CSSWhitespaceRatio
}

// IsJSMinified reports whether JS content looks minified: short files
// trivially pass, longer ones are judged by the density of newlines and
// comment markers.
func (t Thresholds) IsJSMinified(content string) bool {
	if len(content) < t.JSTrivialBytes {
		return true
	}
	noise := strings.Count(content, "\n") +
		strings.Count(content, "//") +
		strings.Count(content, "/*")
	return float64(noise)/float64(len(content)) < t.JSNoiseRatio
}
