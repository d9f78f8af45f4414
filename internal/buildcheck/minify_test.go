package buildcheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTMLMinified(t *testing.T) {
	thresholds := DefaultThresholds()

	t.Run("short document trivially passes", func(t *testing.T) {
		assert.True(t, thresholds.IsHTMLMinified("<html>\n<body>\n</body>\n</html>\n"))
	})

	t.Run("single long line passes", func(t *testing.T) {
		content := "<!doctype html><html><head><title>x</title></head><body>" +
			strings.Repeat("<p>paragraph</p>", 50) + "</body></html>"
		assert.True(t, thresholds.IsHTMLMinified(content))
	})

	t.Run("pretty-printed document fails", func(t *testing.T) {
		content := strings.Repeat("  <div>\n    <p>text</p>\n  </div>\n", 30)
		assert.False(t, thresholds.IsHTMLMinified(content))
	})
}

func TestIsCSSMinified(t *testing.T) {
	thresholds := DefaultThresholds()

	t.Run("empty content passes", func(t *testing.T) {
		assert.True(t, thresholds.IsCSSMinified(""))
	})

	t.Run("minified rule passes", func(t *testing.T) {
		content := strings.Repeat("body{margin:0;padding:0}.a{color:#fff}", 40)
		assert.True(t, thresholds.IsCSSMinified(content))
	})

	t.Run("indented stylesheet fails", func(t *testing.T) {
		content := strings.Repeat("body {\n  margin: 0;\n  padding: 0;\n}\n\n", 30)
		assert.False(t, thresholds.IsCSSMinified(content))
	})
}

func TestIsJSMinified(t *testing.T) {
	thresholds := DefaultThresholds()

	t.Run("short script trivially passes", func(t *testing.T) {
		assert.True(t, thresholds.IsJSMinified("// a comment\nconsole.log(1)\n"))
	})

	t.Run("single-line bundle passes", func(t *testing.T) {
		content := strings.Repeat("function a(){return 1}var b=a();", 60)
		assert.True(t, thresholds.IsJSMinified(content))
	})

	t.Run("commented source fails", func(t *testing.T) {
		content := strings.Repeat("// explains the next line\nconst value = compute();\n", 30)
		assert.False(t, thresholds.IsJSMinified(content))
	})
}

func TestThresholdsTunable(t *testing.T) {
	// A stricter newline ratio flips a borderline document
	content := strings.Repeat("<p>some content that pads the document out</p>\n", 10)

	lax := Thresholds{HTMLNewlineRatio: 0.5, CSSWhitespaceRatio: 0.001, JSNoiseRatio: 0.005, HTMLTrivialBytes: 1, JSTrivialBytes: 1}
	strict := Thresholds{HTMLNewlineRatio: 0.0001, CSSWhitespaceRatio: 0.001, JSNoiseRatio: 0.005, HTMLTrivialBytes: 1, JSTrivialBytes: 1}

	assert.True(t, lax.IsHTMLMinified(content))
	assert.False(t, strict.IsHTMLMinified(content))
}
