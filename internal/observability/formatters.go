// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSections outputs a summary of the detected resume sections.
func (p *Printer) PrintSections(sections types.SectionMap, order []string) {
	if len(sections) == 0 {
		p.printBox("DETECTED SECTIONS", "(none detected)")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected %d sections:\n\n", len(sections)))

	for _, name := range order {
		content, ok := sections[name]
		if !ok {
			continue
		}
		preview := strings.ReplaceAll(content, "\n", " ")
		if len(preview) > 40 {
			preview = preview[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %-16s %s\n", name, preview))
	}

	p.printBox("DETECTED SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs extracted keyword sets for each side of the match.
func (p *Printer) PrintKeywords(resumeKeywords, jobKeywords []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume keywords (%d):\n", len(resumeKeywords)))
	sb.WriteString(formatKeywordList(resumeKeywords))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Job keywords (%d):\n", len(jobKeywords)))
	sb.WriteString(formatKeywordList(jobKeywords))

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

func formatKeywordList(keywords []string) string {
	if len(keywords) == 0 {
		return "  (none)\n"
	}

	var sb strings.Builder
	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
	}
	return sb.String()
}

// PrintMatchResult outputs the scored result with per-aspect breakdown.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final score:       %.1f\n", result.Score))
	sb.WriteString(fmt.Sprintf("Achievement bonus: %.1f\n", result.AchievementBonus))
	sb.WriteString("\n")
	sb.WriteString("Aspect scores:\n")
	sb.WriteString(fmt.Sprintf("  skills        %6.1f\n", result.AspectScores.Skills))
	sb.WriteString(fmt.Sprintf("  experience    %6.1f\n", result.AspectScores.Experience))
	sb.WriteString(fmt.Sprintf("  achievements  %6.1f\n", result.AspectScores.Achievements))
	sb.WriteString(fmt.Sprintf("  education     %6.1f\n", result.AspectScores.Education))
	sb.WriteString(fmt.Sprintf("  culturalFit   %6.1f\n", result.AspectScores.CulturalFit))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Matched (%d):\n", len(result.MatchedKeywords)))
	sb.WriteString(formatKeywordList(result.MatchedKeywords))
	sb.WriteString(fmt.Sprintf("Missing (%d):\n", len(result.MissingKeywords)))
	sb.WriteString(formatKeywordList(result.MissingKeywords))

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the HR recommendation list.
func (p *Printer) PrintRecommendations(recommendations []string) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recommendations {
		if len(rec) > 50 {
			rec = rec[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
