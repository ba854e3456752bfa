package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"driftwatch/app"
	"driftwatch/domain/drift"
)

// Builder renders engine state into a markdown drift report. RenderHTML
// converts the same document for dashboards that embed it.
type Builder struct {
	recentEntries int
	trendWindow   int
}

// NewBuilder creates a report builder covering the newest n entries
func NewBuilder(recentEntries int) *Builder {
	return &Builder{recentEntries: recentEntries, trendWindow: recentEntries}
}

// Markdown renders stats, trend and recent history as a markdown document
func (b *Builder) Markdown(stats drift.Stats, history *app.History) string {
	var doc strings.Builder

	doc.WriteString("# Drift Report\n\n")
	doc.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC3339)))

	doc.WriteString("## Engine Stats\n\n")
	doc.WriteString(fmt.Sprintf("- Total checks: %d\n", stats.TotalChecks))
	doc.WriteString(fmt.Sprintf("- Drift detected: %d\n", stats.DriftDetected))
	doc.WriteString(fmt.Sprintf("- Checks skipped: %d\n", stats.ChecksSkipped))
	doc.WriteString(fmt.Sprintf("- Cache hits: %d\n", stats.CacheHits))
	doc.WriteString(fmt.Sprintf("- Running since: %s\n\n", stats.StartTime.Format(time.RFC3339)))

	doc.WriteString("## Trend\n\n")
	slope := history.Trend(b.trendWindow)
	direction := "flat"
	if slope > 0 {
		direction = "rising"
	} else if slope < 0 {
		direction = "falling"
	}
	doc.WriteString(fmt.Sprintf("Average drift score is %s (slope %.6f over the last %d checks).\n\n", direction, slope, b.trendWindow))

	doc.WriteString("## Recent Checks\n\n")
	entries := history.Recent(b.recentEntries)
	if len(entries) == 0 {
		doc.WriteString("No checks recorded yet.\n")
		return doc.String()
	}

	doc.WriteString("| Timestamp | Drift | Severity | Avg Score |\n")
	doc.WriteString("|---|---|---|---|\n")
	for _, e := range entries {
		doc.WriteString(fmt.Sprintf("| %s | %v | %s | %.4f |\n",
			e.Timestamp.Format(time.RFC3339), e.IsDrift, e.Severity, e.AverageScore))
	}
	return doc.String()
}

// RenderHTML converts a markdown report into a standalone HTML fragment
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
