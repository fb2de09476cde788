// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/essay-grader/internal/feedback"
	"github.com/jonathan/essay-grader/internal/lexicon"
	"github.com/jonathan/essay-grader/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

var tierLabels = [4]string{"insuficiente", "regular", "bom", "excelente"}

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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintScores outputs the five competency scores with their bands and the total.
func (p *Printer) PrintScores(report *types.EssayReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	for i, score := range report.Score.Categories.Values() {
		sb.WriteString(fmt.Sprintf("Competência %d: %3d/200  (%s)\n", i+1, score, tierLabels[feedback.Tier(score)]))
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d/1000", report.Score.Total))
	if report.Degraded {
		sb.WriteString("\n⚠ corretor indisponível: erros não contabilizados")
	}

	p.printBox("ENEM SCORES", sb.String())
}

// PrintStatistics outputs the text counters of a report.
func (p *Printer) PrintStatistics(stats types.Statistics) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Parágrafos:  %d\n", stats.ParagraphsCount))
	sb.WriteString(fmt.Sprintf("Palavras:    %d\n", stats.WordsCount))
	sb.WriteString(fmt.Sprintf("Caracteres:  %d\n", stats.CharactersCount))
	sb.WriteString(fmt.Sprintf("Conectivos:  %d", stats.ConnectivesCount))

	p.printBox("STATISTICS", sb.String())
}

// PrintCorrections outputs the first corrections of a report.
func (p *Printer) PrintCorrections(corrections []types.Correction) {
	if len(corrections) == 0 {
		p.printBox("CORRECTIONS", "✅ nenhum erro encontrado")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d correções:\n\n", len(corrections)))

	count := min(len(corrections), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := corrections[i]
		sb.WriteString(fmt.Sprintf("• [%s] %q", c.Type, c.Original))
		if c.Suggested != "" {
			sb.WriteString(fmt.Sprintf(" → %q", c.Suggested))
		}
		sb.WriteString(fmt.Sprintf(" @%d\n", c.Position.Start))
	}

	if len(corrections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(corrections)-maxItemsToShow))
	}

	p.printBox("CORRECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintConnectives outputs the connective counts per category, skipping empty ones.
func (p *Printer) PrintConnectives(byCategory map[lexicon.Category]int) {
	var sb strings.Builder
	for _, cat := range lexicon.Categories() {
		if n := byCategory[cat]; n > 0 {
			sb.WriteString(fmt.Sprintf("%-14s %d\n", cat, n))
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("nenhum conectivo encontrado")
	}

	p.printBox("CONNECTIVES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs scores, statistics and corrections of a report.
func (p *Printer) PrintReport(report *types.EssayReport) {
	if report == nil {
		return
	}
	p.PrintScores(report)
	p.PrintStatistics(report.Statistics)
	p.PrintCorrections(report.Corrections)
}
