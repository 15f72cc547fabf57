package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaldonado/cv-forge/internal/types"
)

func TestPrintRequirements_RendersBoxWithFields(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRequirements(&types.RequirementsRecord{
		Role:               "Backend Engineer",
		Summary:            "Java services.",
		Technologies:       []string{"java", "spring boot", "docker", "kubernetes", "aws", "terraform"},
		IndustryTags:       []string{"banca"},
		Requirements:       []string{"5+ years of experience"},
		MinYearsExperience: 5,
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED JOB REQUIREMENTS")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "5 years")
	assert.Contains(t, out, "... and 1 more")
	assert.Contains(t, out, "banca")
}

func TestPrintRequirements_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRequirements(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRanking_ShowsScoresAndMatches(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRanking([]types.RankedEntry{
		{
			Entry:               &types.ExperienceEntry{Company: "BigBank", Role: "Senior Engineer"},
			Score:               0.85,
			MatchedTechnologies: []string{"java"},
			MatchedTags:         []string{"banca"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "RANKED EXPERIENCE")
	assert.Contains(t, out, "#1  BigBank - Senior Engineer")
	assert.Contains(t, out, "0.85")
	assert.Contains(t, out, "java")
}

func TestPrintRanking_EmptyIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRanking(nil)
	assert.Empty(t, buf.String())
}

func TestPrintKeywords_DashesForEmptySets(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintKeywords(&types.CriticalKeywords{MustMention: []string{"Genai"}})

	out := buf.String()
	assert.Contains(t, out, "CRITICAL KEYWORDS")
	assert.Contains(t, out, "Genai")
	assert.Contains(t, out, "-")
}

func TestPrintCVSummary_CountsPositions(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintCVSummary(&types.CVDocument{
		FullName: "Ana Gomez",
		Language: types.LanguageSpanish,
		Experience: []types.CVExperience{
			{Company: "BigBank", Role: "Senior Engineer", Bullets: []string{"a", "b"}},
		},
		KeySkills: []string{"Languages: Java"},
	})

	out := buf.String()
	assert.Contains(t, out, "CV DOCUMENT")
	assert.Contains(t, out, "Ana Gomez")
	assert.Contains(t, out, "(2 bullets)")
}

func TestPrintLetterSummary_PreviewsParagraphs(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintLetterSummary(&types.CoverLetter{
		Role:       "GenAI Engineer",
		Language:   types.LanguageEnglish,
		Paragraphs: []string{"Opening paragraph.", "Evidence paragraph."},
	})

	out := buf.String()
	assert.Contains(t, out, "COVER LETTER BODY")
	assert.Contains(t, out, "1. Opening paragraph.")
	assert.Contains(t, out, "2. Evidence paragraph.")
}
