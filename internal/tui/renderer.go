// Package tui renders validation and build reports as styled terminal
// output.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sitecheck/sitecheck/internal/buildcheck"
	"github.com/sitecheck/sitecheck/internal/content"
)

var (
	accent  = lipgloss.Color("#2563EB") // blue
	fg      = lipgloss.Color("#E5E7EB") // light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	warnStyle   = lipgloss.NewStyle().Foreground(warning)
)

var titleCaser = cases.Title(language.English)

// RenderContentReport renders a content validation report.
func RenderContentReport(report content.Report) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("sitecheck") + "  " + dimStyle.Render("content validation") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %d   %s %d   %s %d\n\n",
		dimStyle.Render("total"), report.Summary.Total,
		passStyle.Render("valid"), report.Summary.Valid,
		failStyle.Render("invalid"), report.Summary.Invalid,
	))

	for _, result := range report.Results {
		marker := passStyle.Render("●")
		if !result.Valid {
			marker = failStyle.Render("●")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", marker, titleStyle.Render(result.File)))
		for _, msg := range result.Errors {
			b.WriteString("      " + failStyle.Render(msg) + "\n")
		}
	}

	b.WriteString("\n")
	if report.Success {
		b.WriteString("  " + passStyle.Render("All content files are valid.") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("%d file(s) failed validation.", report.Summary.Invalid)) + "\n")
	}
	return b.String()
}

// RenderBuildReport renders a build optimization report with its
// pass/fail outcome.
func RenderBuildReport(report *buildcheck.Report, outcome buildcheck.ValidationOutcome) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("sitecheck") + "  " + dimStyle.Render("build optimization") + "\n\n")
	b.WriteString("  " + titleStyle.Render(report.Dir) + "\n\n")

	for _, assetType := range buildcheck.AssetTypes {
		stats, ok := report.Stats[assetType]
		if !ok || stats.Count == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-8s %3d file(s)  %s\n",
			titleCaser.String(string(assetType)),
			stats.Count,
			dimStyle.Render(fmt.Sprintf("%.1f KB avg", stats.AverageSize/1024)),
		))
	}
	b.WriteString("\n")

	b.WriteString("  " + checkLine("content hashes", report.AllAssetsHashed) + "\n")
	b.WriteString("  " + checkLine("html minified", report.HTMLMinified) + "\n")
	b.WriteString("  " + checkLine("css minified", report.CSSMinified) + "\n")
	b.WriteString("  " + checkLine("js minified", report.JSMinified) + "\n")

	for _, warn := range report.HTMLParseWarnings {
		b.WriteString("  " + warnStyle.Render("warning: "+warn) + "\n")
	}

	b.WriteString("\n")
	if outcome.Valid {
		b.WriteString("  " + passStyle.Render("Build output passes optimization checks.") + "\n")
	} else {
		for _, msg := range outcome.Errors {
			b.WriteString("  " + failStyle.Render("error: "+msg) + "\n")
		}
	}
	return b.String()
}

// RenderChanges renders a manifest diff.
func RenderChanges(changes content.Changes) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("sitecheck") + "  " + dimStyle.Render("content changes") + "\n\n")
	if !changes.HasChanges() {
		b.WriteString("  " + dimStyle.Render("No content changes detected.") + "\n")
		return b.String()
	}

	renderChangeSection(&b, "Added", changes.Added, passStyle)
	renderChangeSection(&b, "Modified", changes.Modified, warnStyle)
	renderChangeSection(&b, "Deleted", changes.Deleted, failStyle)
	return b.String()
}

func renderChangeSection(b *strings.Builder, title string, paths []string, style lipgloss.Style) {
	if len(paths) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", titleStyle.Render(title), dimStyle.Render(fmt.Sprintf("(%d)", len(paths)))))
	for _, path := range paths {
		b.WriteString("    " + style.Render("●") + " " + path + "\n")
	}
	b.WriteString("\n")
}

func checkLine(label string, ok bool) string {
	if ok {
		return passStyle.Render("✓") + " " + label
	}
	return failStyle.Render("✗") + " " + label
}
