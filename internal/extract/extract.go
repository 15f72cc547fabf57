// Package extract turns raw job posting text (or a posting URL) into a
// structured requirements record using deterministic keyword and pattern
// scans. No model calls are made here.
package extract

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/amaldonado/cv-forge/internal/fetch"
	"github.com/amaldonado/cv-forge/internal/types"
)

// MaxRoleLength rejects role candidates longer than this; they are
// almost always a sentence the pattern over-matched.
const MaxRoleLength = 100

// MaxSummaryLength caps the summary carried in the requirements record.
const MaxSummaryLength = 500

// maxListItems caps the requirements and responsibilities lists.
const maxListItems = 10

// minLineLength filters out fragments when scanning list lines.
const minLineLength = 20

// Fetcher retrieves posting text for URL inputs.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.CachedResult, error)
}

// Analyzer extracts structured requirements from postings.
type Analyzer struct {
	fetcher Fetcher
	verbose bool
}

// NewAnalyzer creates an analyzer. The fetcher may be nil when callers
// only ever pass posting text, not URLs.
func NewAnalyzer(fetcher Fetcher, verbose bool) *Analyzer {
	return &Analyzer{fetcher: fetcher, verbose: verbose}
}

// Analyze extracts a requirements record from posting text or a posting
// URL. roleHint, when non-empty, overrides role extraction.
func (a *Analyzer) Analyze(ctx context.Context, jobDescription, roleHint string) (*types.RequirementsRecord, error) {
	text := jobDescription

	if fetch.IsURL(jobDescription) {
		if a.fetcher == nil {
			return nil, fmt.Errorf("posting is a URL but no fetcher is configured")
		}
		result, err := a.fetcher.Fetch(ctx, strings.TrimSpace(jobDescription))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch posting: %w", err)
		}
		text = result.Text
		if a.verbose {
			log.Printf("[VERBOSE] Fetched posting: %d chars (cached=%v)", len(text), result.FromCache)
		}
	}

	role := roleHint
	if role == "" {
		role = ExtractRole(text)
	}

	record := &types.RequirementsRecord{
		Role:                  role,
		Summary:               summarize(text),
		Technologies:          ExtractTechnologies(text),
		Requirements:          ExtractRequirements(text),
		Responsibilities:      ExtractResponsibilities(text),
		IndustryTags:          ExtractIndustryTags(text),
		MinYearsExperience:    ExtractMinYears(text),
		EducationRequirements: ExtractEducation(text),
	}

	if a.verbose {
		log.Printf("[VERBOSE] Extracted: role=%q techs=%d reqs=%d resps=%d tags=%v",
			record.Role, len(record.Technologies), len(record.Requirements),
			len(record.Responsibilities), record.IndustryTags)
	}

	return record, nil
}

// ExtractRole finds a job title in posting text. Returns "" when no
// pattern yields a plausible title.
func ExtractRole(text string) string {
	for _, pattern := range rolePatterns {
		match := pattern.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}
		role := strings.TrimSpace(match[1])
		role = strings.Join(strings.Fields(role), " ")
		if len(role) > 0 && len(role) < MaxRoleLength {
			return role
		}
	}
	return ""
}

// ExtractTechnologies returns vocabulary terms present in the text,
// in vocabulary order, deduplicated.
func ExtractTechnologies(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var found []string
	for _, tech := range techVocabulary {
		if !strings.Contains(lower, tech) {
			continue
		}
		if seen[tech] {
			continue
		}
		seen[tech] = true
		found = append(found, tech)
	}
	return found
}

// ExtractIndustryTags returns sector terms present in the text,
// in vocabulary order, deduplicated.
func ExtractIndustryTags(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var found []string
	for _, tag := range industryVocabulary {
		if !strings.Contains(lower, tag) {
			continue
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		found = append(found, tag)
	}
	return found
}

// ExtractRequirements scans for requirement lines: bullet or numbered
// items, plus lines carrying requirement trigger words. Capped at 10.
func ExtractRequirements(text string) []string {
	var requirements []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) <= minLineLength {
			continue
		}

		if bulletLine.MatchString(line) {
			requirements = append(requirements, line)
			continue
		}

		lower := strings.ToLower(line)
		for _, trigger := range requirementTriggers {
			if strings.Contains(lower, trigger) {
				requirements = append(requirements, line)
				break
			}
		}
	}
	if len(requirements) > maxListItems {
		requirements = requirements[:maxListItems]
	}
	return requirements
}

// ExtractResponsibilities collects list lines following a
// responsibilities section header. Capped at 10.
func ExtractResponsibilities(text string) []string {
	var responsibilities []string
	inSection := false

scan:
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if !inSection {
			for _, header := range responsibilityHeaders {
				if strings.Contains(lower, header) {
					inSection = true
					continue scan
				}
			}
			continue
		}

		line = strings.TrimSpace(line)
		switch {
		case bulletLine.MatchString(line):
			if len(line) > minLineLength {
				responsibilities = append(responsibilities, line)
			}
		case line != "" && !sectionHeader.MatchString(line):
			if len(line) > minLineLength {
				responsibilities = append(responsibilities, line)
			} else {
				break scan
			}
		}
	}

	if len(responsibilities) > maxListItems {
		responsibilities = responsibilities[:maxListItems]
	}
	return responsibilities
}

// ExtractMinYears returns the minimum years of experience mentioned in
// the text, or 0 when none is found.
func ExtractMinYears(text string) int {
	for _, pattern := range experiencePatterns {
		match := pattern.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}
		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		return years
	}
	return 0
}

// ExtractEducation returns identifiers of the education patterns found.
func ExtractEducation(text string) []string {
	var found []string
	for _, pattern := range educationPatterns {
		if pattern.re.MatchString(text) {
			found = append(found, pattern.id)
		}
	}
	return found
}

func summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxSummaryLength {
		return text
	}
	return string(runes[:MaxSummaryLength]) + "..."
}
