// Package keywords distills extracted job requirements into the compact
// keyword sets the adaptation prompts are built from.
package keywords

import (
	"strings"
	"unicode"

	"github.com/amaldonado/cv-forge/internal/types"
)

// MaxJobKeywords caps the keyword list handed to adaptation prompts.
const MaxJobKeywords = 7

// aiKeywords are terms the cover letter must mention when the posting
// asks for them.
var aiKeywords = []string{
	"genai", "llm", "llms", "rag", "langchain", "prompt engineering",
	"inteligencia artificial", "ia", "machine learning", "ml",
}

// skillKeywords are soft-skill and practice terms worth surfacing, in
// English and Spanish.
var skillKeywords = []string{
	"liderazgo", "leadership", "stakeholder", "comunicación", "communication",
	"arquitectura", "architecture", "end-to-end", "producción", "production",
}

// summaryTechKeywords are scanned in the posting summary to pad the job
// keyword list when role, technologies, and tags leave room.
var summaryTechKeywords = []string{
	"ai", "machine learning", "deep learning", "nlp", "computer vision",
	"python", "java", "aws", "gcp", "azure", "microservices", "docker",
	"kubernetes", "leadership", "architecture", "backend", "frontend",
}

// Critical builds the critical keyword sets for cover-letter prompts:
// terms the letter must mention, top industries, top technologies, and
// soft skills detected in the posting.
func Critical(reqs *types.RequirementsRecord) *types.CriticalKeywords {
	critical := &types.CriticalKeywords{}

	allText := strings.ToLower(reqs.Role) + " " + strings.ToLower(reqs.Summary)

	for _, keyword := range aiKeywords {
		if strings.Contains(allText, keyword) {
			critical.MustMention = append(critical.MustMention, titleCase(keyword))
		}
	}

	critical.Industry = head(reqs.IndustryTags, 3)
	critical.Technologies = head(reqs.Technologies, 5)

	for _, keyword := range skillKeywords {
		if strings.Contains(allText, keyword) {
			critical.Skills = append(critical.Skills, titleCase(keyword))
		}
	}

	return critical
}

// ForJob builds the keyword list for adaptation prompts: the role, top
// technologies, top industry tags, then summary terms, deduplicated
// case-insensitively and capped at MaxJobKeywords.
func ForJob(reqs *types.RequirementsRecord) []string {
	var keywords []string

	if reqs.Role != "" {
		keywords = append(keywords, reqs.Role)
	}
	keywords = append(keywords, head(reqs.Technologies, 5)...)
	keywords = append(keywords, head(reqs.IndustryTags, 3)...)

	if reqs.Summary != "" {
		summaryLower := strings.ToLower(reqs.Summary)
		for _, kw := range summaryTechKeywords {
			if strings.Contains(summaryLower, kw) {
				keywords = append(keywords, kw)
			}
		}
	}

	seen := make(map[string]bool)
	unique := make([]string, 0, MaxJobKeywords)
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		if seen[lower] || len(unique) >= MaxJobKeywords {
			continue
		}
		seen[lower] = true
		unique = append(unique, kw)
	}

	return unique
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
