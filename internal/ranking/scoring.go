// Package ranking scores portfolio experience entries against extracted
// job requirements. Two scoring variants exist: the CV variant weights
// technology overlap highest, the cover-letter variant weights industry
// fit highest and applies the banking and GenAI rules.
package ranking

import (
	"strings"

	"github.com/amaldonado/cv-forge/internal/types"
)

// CV variant weights.
const (
	cvTechWeight     = 0.4
	cvTagWeight      = 0.3
	cvRoleWeight     = 0.2
	cvFreeTextWeight = 0.1
)

// Cover-letter variant weights.
const (
	letterTagWeight      = 0.5
	letterGenAIBonus     = 0.4
	letterGenAIPenalty   = 0.2
	letterTechWeight     = 0.3
	letterRoleWeight     = 0.1
	letterFreeTextWeight = 0.1
)

// bankingEntryTag marks portfolio entries with banking-sector experience.
const bankingEntryTag = "industria_bancaria"

// roleKeywords are seniority and discipline markers compared between the
// posting role and an entry role.
var roleKeywords = []string{"senior", "lead", "tech lead", "architect", "cto", "engineer", "developer"}

// genAIKeywords identify generative-AI stacks in technology lists.
var genAIKeywords = []string{"genai", "llm", "llms", "rag", "langchain", "huggingface", "prompt engineering"}

// stopWords are excluded from free-text overlap scoring.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true,
}

// computeTechScore counts requirement technologies present in the entry,
// using bidirectional substring matching so "python" matches
// "python/fastapi". Returns the match ratio and matched terms.
func computeTechScore(entry *types.ExperienceEntry, reqTechs []string) (float64, []string) {
	if len(reqTechs) == 0 {
		return 0.0, nil
	}

	entryTechs := lowerAll(entry.Technologies)
	var matched []string

	for _, reqTech := range lowerAll(reqTechs) {
		for _, entryTech := range entryTechs {
			if strings.Contains(entryTech, reqTech) || strings.Contains(reqTech, entryTech) {
				matched = append(matched, reqTech)
				break
			}
		}
	}

	return float64(len(matched)) / float64(len(reqTechs)), matched
}

// computeTagScore counts requirement industry tags present in the entry
// tags (exact match after lowercasing). Returns the match ratio and
// matched tags.
func computeTagScore(entry *types.ExperienceEntry, reqTags []string) (float64, []string) {
	if len(reqTags) == 0 {
		return 0.0, nil
	}

	entryTags := make(map[string]bool)
	for _, tag := range lowerAll(entry.Tags) {
		entryTags[tag] = true
	}

	var matched []string
	for _, reqTag := range lowerAll(reqTags) {
		if entryTags[reqTag] {
			matched = append(matched, reqTag)
		}
	}

	return float64(len(matched)) / float64(len(reqTags)), matched
}

// computeRoleScore returns 1 when the posting role and the entry role
// share a role keyword, 0 otherwise.
func computeRoleScore(entry *types.ExperienceEntry, reqRole string) float64 {
	if reqRole == "" || entry.Role == "" {
		return 0.0
	}

	reqLower := strings.ToLower(reqRole)
	entryLower := strings.ToLower(entry.Role)
	for _, keyword := range roleKeywords {
		if strings.Contains(reqLower, keyword) && strings.Contains(entryLower, keyword) {
			return 1.0
		}
	}
	return 0.0
}

// computeFreeTextScore measures word overlap between the posting summary
// and the entry description, ignoring stop words and short words.
func computeFreeTextScore(entry *types.ExperienceEntry, summary string) float64 {
	if summary == "" || entry.Description == "" {
		return 0.0
	}

	reqWords := significantWords(summary)
	if len(reqWords) == 0 {
		return 0.0
	}
	entryWords := significantWords(entry.Description)

	common := 0
	for word := range reqWords {
		if entryWords[word] {
			common++
		}
	}

	score := float64(common) / float64(len(reqWords))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// hasGenAIStack reports whether any GenAI keyword appears in the joined
// technology list.
func hasGenAIStack(technologies []string) bool {
	joined := strings.ToLower(strings.Join(technologies, " "))
	for _, keyword := range genAIKeywords {
		if strings.Contains(joined, keyword) {
			return true
		}
	}
	return false
}

// requiresBanking reports whether any requirement tag mentions banking.
func requiresBanking(reqTags []string) bool {
	for _, tag := range lowerAll(reqTags) {
		if strings.Contains(tag, "banca") || strings.Contains(tag, "banking") {
			return true
		}
	}
	return false
}

func hasTag(entry *types.ExperienceEntry, tag string) bool {
	for _, t := range lowerAll(entry.Tags) {
		if t == tag {
			return true
		}
	}
	return false
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.ToLower(item)
	}
	return out
}

func significantWords(text string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len(word) > 3 && !stopWords[word] {
			words[word] = true
		}
	}
	return words
}

func clamp01(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
