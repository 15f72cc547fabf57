// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/amaldonado/cv-forge/internal/types"
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

// PrintRequirements outputs a human-readable summary of the extracted
// job requirements.
func (p *Printer) PrintRequirements(reqs *types.RequirementsRecord) {
	if reqs == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:     %s\n", orDash(reqs.Role)))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", orDash(reqs.Company)))
	if reqs.MinYearsExperience > 0 {
		sb.WriteString(fmt.Sprintf("Min exp:  %d years\n", reqs.MinYearsExperience))
	}
	sb.WriteString("\n")

	if len(reqs.Technologies) > 0 {
		sb.WriteString("Technologies:\n")
		count := min(len(reqs.Technologies), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", reqs.Technologies[i]))
		}
		if len(reqs.Technologies) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(reqs.Technologies)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(reqs.IndustryTags) > 0 {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", strings.Join(reqs.IndustryTags, ", ")))
	}
	if len(reqs.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		count := min(len(reqs.Requirements), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", reqs.Requirements[i]))
		}
		if len(reqs.Requirements) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(reqs.Requirements)-3))
		}
	}
	if len(reqs.EducationRequirements) > 0 {
		sb.WriteString(fmt.Sprintf("Education: %s\n", strings.Join(reqs.EducationRequirements, ", ")))
	}

	p.printBox("EXTRACTED JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs ranked experience entries with scores and matched evidence.
func (p *Printer) PrintRanking(ranked []types.RankedEntry) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total entries ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s - %s\n", i+1, entry.Entry.Company, entry.Entry.Role))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", entry.Score))
		if len(entry.MatchedTechnologies) > 0 {
			techs := strings.Join(entry.MatchedTechnologies, ", ")
			if len(techs) > 40 {
				techs = techs[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Tech:  %s\n", techs))
		}
		if len(entry.MatchedTags) > 0 {
			sb.WriteString(fmt.Sprintf("    Tags:  %s\n", strings.Join(entry.MatchedTags, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED EXPERIENCE", sb.String())
}

// PrintKeywords outputs the critical keyword set steering generation.
func (p *Printer) PrintKeywords(critical *types.CriticalKeywords) {
	if critical == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Must mention:  %s\n", orDash(strings.Join(critical.MustMention, ", "))))
	sb.WriteString(fmt.Sprintf("Industry:      %s\n", orDash(strings.Join(critical.Industry, ", "))))
	sb.WriteString(fmt.Sprintf("Technologies:  %s\n", orDash(strings.Join(critical.Technologies, ", "))))
	sb.WriteString(fmt.Sprintf("Skills:        %s", orDash(strings.Join(critical.Skills, ", "))))

	p.printBox("CRITICAL KEYWORDS", sb.String())
}

// PrintCVSummary outputs the assembled CV document before rendering.
func (p *Printer) PrintCVSummary(doc *types.CVDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", doc.FullName))
	sb.WriteString(fmt.Sprintf("Language:  %s\n", doc.Language))
	sb.WriteString(fmt.Sprintf("Positions: %d\n", len(doc.Experience)))
	sb.WriteString("\n")

	count := min(len(doc.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := doc.Experience[i]
		sb.WriteString(fmt.Sprintf("• %s - %s (%d bullets)\n", exp.Company, exp.Role, len(exp.Bullets)))
	}
	if len(doc.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more positions\n", len(doc.Experience)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nKey skills: %d lines, education: %d entries", len(doc.KeySkills), len(doc.Education)))

	p.printBox("CV DOCUMENT", sb.String())
}

// PrintLetterSummary outputs the shaped cover-letter body.
func (p *Printer) PrintLetterSummary(letter *types.CoverLetter) {
	if letter == nil || len(letter.Paragraphs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", orDash(letter.Role)))
	sb.WriteString(fmt.Sprintf("Language:  %s\n", letter.Language))
	sb.WriteString(fmt.Sprintf("Paragraphs: %d\n\n", len(letter.Paragraphs)))

	for i, paragraph := range letter.Paragraphs {
		preview := paragraph
		if len(preview) > 50 {
			preview = preview[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, preview))
	}

	p.printBox("COVER LETTER BODY", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
