// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for boxes and summaries
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n characters, ending in "..." when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
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

// PrintJobList outputs one line per posting plus catalog statistics.
// indices gives each posting's catalog index; nil numbers them in order.
func (p *Printer) PrintJobList(postings []types.JobPosting, indices []int) {
	if len(postings) == 0 {
		return
	}

	var sb strings.Builder
	total := 0
	for i, job := range postings {
		total += utf8.RuneCountInString(job.Description)
		index := i
		if i < len(indices) {
			index = indices[i]
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", index, job.Title))
		sb.WriteString(fmt.Sprintf("   %s · %s\n", job.Company, job.Location))
	}
	sb.WriteString(fmt.Sprintf("\nPostings: %d   Avg description: %d chars", len(postings), total/len(postings)))

	p.printBox("JOB POSTINGS", sb.String())
}

// PrintJobPosting outputs a posting header and the start of its description.
func (p *Printer) PrintJobPosting(job types.JobPosting) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Location: %s\n\n", job.Location))

	lines := strings.Split(strings.TrimSpace(job.Description), "\n")
	count := min(len(lines), 8)
	sb.WriteString(strings.Join(lines[:count], "\n"))
	if len(lines) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more lines", len(lines)-count))
	}

	p.printBox("JOB POSTING", sb.String())
}

// PrintExtractedInfo outputs the keyword-derived skills and requirements.
func (p *Printer) PrintExtractedInfo(info types.ExtractedInfo) {
	var sb strings.Builder

	if len(info.Skills) == 0 {
		sb.WriteString("Skills: none detected\n")
	} else {
		sb.WriteString("Skills:\n")
		count := min(len(info.Skills), maxItemsToShow)
		for _, skill := range info.Skills[:count] {
			sb.WriteString(fmt.Sprintf("  • %s", skill))
			if cat := info.Categories[skill]; cat != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", cat))
			}
			sb.WriteString("\n")
		}
		if len(info.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(info.Skills)-maxItemsToShow))
		}
	}

	if len(info.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		for _, req := range info.Requirements {
			sb.WriteString(fmt.Sprintf("  • %s\n", req))
		}
	}

	p.printBox("EXTRACTED INFO", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs a quick score and the rules behind it.
func (p *Printer) PrintScore(res scoring.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Quick score: %d/10   (%d words)\n\n", res.Score, res.WordCount))
	for _, rule := range res.Rules {
		sb.WriteString(fmt.Sprintf("  %+d  %s\n", rule.Points, rule.Name))
	}
	p.printBox("ANSWER SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluations outputs a summary of a mock interview.
func (p *Printer) PrintEvaluations(evals []types.Evaluation) {
	if len(evals) == 0 {
		return
	}

	var sb strings.Builder
	total := 0
	for i, e := range evals {
		total += e.QuickScore
		sb.WriteString(fmt.Sprintf("Q%d [%d/10] %s\n", i+1, e.QuickScore, e.Question))
	}
	sb.WriteString(fmt.Sprintf("\nAnswered: %d   Avg quick score: %.1f", len(evals), float64(total)/float64(len(evals))))

	p.printBox("MOCK INTERVIEW SUMMARY", sb.String())
}

// PrintSection prints a titled block of free text without a box, for
// completion output that should stay copyable.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSection(title, body string) {
	fmt.Fprintf(p.out, "\n=== %s ===\n\n%s\n", title, strings.TrimSpace(body))
}
