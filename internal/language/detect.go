// Package language decides whether generated documents should be in
// Spanish or English, matching the posting's language. A fast indicator
// heuristic handles clear cases; ambiguous postings fall back to a tiny
// model call, and on failure the heuristic count decides with a Spanish
// default.
package language

import (
	"context"
	"log"
	"strings"

	"github.com/amaldonado/cv-forge/internal/llm"
	"github.com/amaldonado/cv-forge/internal/prompts"
	"github.com/amaldonado/cv-forge/internal/types"
)

// SampleLength is how much of the posting the detector examines.
const SampleLength = 1000

// heuristicMargin is how strongly one language must outscore the other
// before the result is accepted without a model call.
const heuristicMargin = 1.5

var spanishIndicators = []string{
	"se busca", "buscamos", "estamos buscando", "requisitos", "experiencia",
	"empresa", "ofrecemos", "perfil", "candidato", "trabajo",
	"desarrollo", "tecnología", "ingeniero", "arquitecto", "responsabilidades",
	"conocimientos", "formación", "titulación",
}

var englishIndicators = []string{
	"we are looking", "looking for", "requirements", "experience", "company",
	"we offer", "candidate", "profile", "development", "technology", "engineer",
	"architect", "responsibilities", "knowledge", "education", "degree",
}

// Detector resolves the posting language. The client may be nil, in
// which case only the heuristic runs.
type Detector struct {
	client  llm.Client
	verbose bool
}

// NewDetector creates a detector backed by the given model client.
func NewDetector(client llm.Client, verbose bool) *Detector {
	return &Detector{client: client, verbose: verbose}
}

// Detect returns the posting language, "es" or "en".
func (d *Detector) Detect(ctx context.Context, jobDescription string) types.Language {
	sample := sampleText(jobDescription)
	spanishCount, englishCount := indicatorCounts(sample)

	if float64(spanishCount) > float64(englishCount)*heuristicMargin {
		return types.LanguageSpanish
	}
	if float64(englishCount) > float64(spanishCount)*heuristicMargin {
		return types.LanguageEnglish
	}

	if d.client != nil {
		if lang, ok := d.detectWithModel(ctx, sample); ok {
			return lang
		}
	}

	// Heuristic tie-break, Spanish wins ties.
	if spanishCount >= englishCount {
		return types.LanguageSpanish
	}
	return types.LanguageEnglish
}

func (d *Detector) detectWithModel(ctx context.Context, sample string) (types.Language, bool) {
	template, err := prompts.Get("language.json", "detect")
	if err != nil {
		return "", false
	}
	prompt := prompts.Format(template, map[string]string{"Sample": sample})

	response, err := d.client.Generate(ctx, llm.Request{
		Prompt:      prompt,
		System:      prompts.MustGet("language.json", "detect-system"),
		Temperature: 0.0,
		MaxTokens:   5,
	})
	if err != nil {
		if d.verbose {
			log.Printf("[VERBOSE] Language detection model call failed: %v", err)
		}
		return "", false
	}

	clean := strings.ToLower(strings.TrimSpace(response))
	switch {
	case strings.Contains(clean, "es") || strings.Contains(clean, "spanish") || strings.Contains(clean, "español"):
		return types.LanguageSpanish, true
	case strings.Contains(clean, "en") || strings.Contains(clean, "english"):
		return types.LanguageEnglish, true
	default:
		// Unparseable answer defaults to Spanish.
		return types.LanguageSpanish, true
	}
}

func sampleText(text string) string {
	runes := []rune(text)
	if len(runes) > SampleLength {
		return string(runes[:SampleLength])
	}
	return text
}

func indicatorCounts(sample string) (spanish, english int) {
	lower := strings.ToLower(sample)
	for _, indicator := range spanishIndicators {
		if strings.Contains(lower, indicator) {
			spanish++
		}
	}
	for _, indicator := range englishIndicators {
		if strings.Contains(lower, indicator) {
			english++
		}
	}
	return spanish, english
}
