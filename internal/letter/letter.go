// Package letter builds cover-letter body paragraphs: it assembles the
// keyword-focused generation context, issues the single generation call,
// and shapes the response into clean paragraphs. Greeting and signature
// belong to the renderer, never to this package.
package letter

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/amaldonado/cv-forge/internal/llm"
	"github.com/amaldonado/cv-forge/internal/prompts"
	"github.com/amaldonado/cv-forge/internal/types"
)

// Generation parameters for the letter body. A single call produces all
// four paragraphs.
const (
	letterTemperature = 0.4
	letterMaxTokens   = 1200
)

// maxMainKeywordLength bounds the paragraph-one hook keyword.
const maxMainKeywordLength = 50

// genAIKeywords trigger the GenAI evidence-mapping instruction.
var genAIKeywords = []string{"genai", "llm", "llms", "rag", "langchain", "prompt engineering"}

// Generator produces cover-letter body paragraphs.
type Generator struct {
	client  llm.Client
	verbose bool
}

// NewGenerator creates a letter generator.
func NewGenerator(client llm.Client, verbose bool) *Generator {
	return &Generator{client: client, verbose: verbose}
}

// Generate issues the letter generation call and returns the shaped body
// paragraphs. companyInfo is optional free text about the company.
func (g *Generator) Generate(
	ctx context.Context,
	portfolio *types.Portfolio,
	reqs *types.RequirementsRecord,
	critical *types.CriticalKeywords,
	top []types.RankedEntry,
	companyInfo string,
	lang types.Language,
) ([]string, error) {
	mustMention := strings.Join(critical.MustMention, ", ")
	if mustMention == "" {
		mustMention = "None specific"
	}
	industry := strings.Join(critical.Industry, ", ")
	if industry == "" {
		industry = "General technology"
	}
	if companyInfo == "" {
		companyInfo = "N/A"
	}

	template, err := prompts.Get("letter.json", promptKey(lang))
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"MustMention":     mustMention,
		"MainKeyword":     MainKeyword(critical, reqs),
		"Industry":        industry,
		"JobRequirements": FormatRequirements(reqs, critical),
		"CompanyInfo":     companyInfo,
		"Experience":      ExperienceContext(top, critical, reqs),
		"Philosophy":      PhilosophyText(portfolio),
	})

	response, err := g.client.Generate(ctx, llm.Request{
		Prompt:      prompt,
		System:      prompts.MustGet("letter.json", systemPromptKey(lang)),
		Temperature: letterTemperature,
		MaxTokens:   letterMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	paragraphs := ShapeParagraphs(response)
	if len(paragraphs) == 0 {
		return nil, fmt.Errorf("letter generation produced no usable paragraphs")
	}
	if g.verbose {
		log.Printf("[VERBOSE] Letter body shaped into %d paragraphs", len(paragraphs))
	}
	return paragraphs, nil
}

func promptKey(lang types.Language) string {
	if lang == types.LanguageEnglish {
		return "letter-en"
	}
	return "letter-es"
}

func systemPromptKey(lang types.Language) string {
	if lang == types.LanguageEnglish {
		return "letter-system-en"
	}
	return "letter-system-es"
}

// MainKeyword picks the paragraph-one hook: the first must-mention
// keyword, or the posting role truncated to 50 chars.
func MainKeyword(critical *types.CriticalKeywords, reqs *types.RequirementsRecord) string {
	if len(critical.MustMention) > 0 {
		return critical.MustMention[0]
	}
	role := []rune(reqs.Role)
	if len(role) > maxMainKeywordLength {
		role = role[:maxMainKeywordLength]
	}
	return strings.TrimSpace(string(role))
}

// FormatRequirements renders the requirements record with keyword
// emphasis for the letter prompt.
func FormatRequirements(reqs *types.RequirementsRecord, critical *types.CriticalKeywords) string {
	var parts []string
	if reqs.Role != "" {
		parts = append(parts, "Role: "+reqs.Role)
	}
	if reqs.Company != "" {
		parts = append(parts, "Company: "+reqs.Company)
	}
	parts = append(parts, "Summary: "+reqs.Summary)
	if len(critical.MustMention) > 0 {
		parts = append(parts, "CRITICAL KEYWORDS (MUST MENTION): "+strings.Join(critical.MustMention, ", "))
	}
	if len(critical.Industry) > 0 {
		parts = append(parts, "Industry: "+strings.Join(critical.Industry, ", "))
	}
	if len(reqs.Technologies) > 0 {
		techs := reqs.Technologies
		if len(techs) > 10 {
			techs = techs[:10]
		}
		parts = append(parts, "Technologies: "+strings.Join(techs, ", "))
	}
	return strings.Join(parts, "\n")
}

// ExperienceContext builds the evidence block: explicit mapping
// instructions for industry and GenAI requirements, then the ranked
// entries annotated with their keyword matches.
func ExperienceContext(top []types.RankedEntry, critical *types.CriticalKeywords, reqs *types.RequirementsRecord) string {
	var parts []string

	instructions := mappingInstructions(reqs)
	if len(instructions) > 0 {
		parts = append(parts, "### EVIDENCE MAPPING (READ THIS FIRST):")
		parts = append(parts, strings.Join(instructions, "\n"))
		parts = append(parts, "")
	}

	parts = append(parts, "### RELEVANT EXPERIENCE:")

	for i, ranked := range top {
		entry := ranked.Entry

		tags := strings.Join(entry.Tags, ", ")
		if tags == "" {
			tags = "N/A"
		}
		achievements := "N/A"
		if len(entry.Achievements) > 0 {
			capped := entry.Achievements
			if len(capped) > 3 {
				capped = capped[:3]
			}
			achievements = strings.Join(capped, ", ")
		}
		techs := entry.Technologies
		if len(techs) > 15 {
			techs = techs[:15]
		}

		parts = append(parts, fmt.Sprintf(
			"\nPROJECT %d: %s - %s%s\nTags: %s\nDescription: %s\nKey Achievements: %s\nTechnologies: %s\n",
			i+1, entry.Company, entry.Role, matchMarkers(entry, critical, reqs),
			tags, entry.Description, achievements, strings.Join(techs, ", "),
		))
	}

	return strings.Join(parts, "\n")
}

func mappingInstructions(reqs *types.RequirementsRecord) []string {
	var instructions []string

	for _, tag := range reqs.IndustryTags {
		lower := strings.ToLower(tag)
		if strings.Contains(lower, "banca") || strings.Contains(lower, "banking") {
			instructions = append(instructions,
				"CRITICAL: The posting requires BANKING experience. "+
					"You MUST prioritize projects tagged 'industria_bancaria'.")
			break
		}
	}

	reqText := strings.ToLower(reqs.Role + " " + reqs.Summary)
	for _, keyword := range genAIKeywords {
		if strings.Contains(reqText, keyword) {
			instructions = append(instructions,
				"CRITICAL: The posting requires GenAI/LLM experience. "+
					"You MUST use projects whose technology list contains terms like 'RAG', 'LLMs', 'LangChain', 'HuggingFace'.")
			break
		}
	}

	return instructions
}

// matchMarkers annotates an entry with its evidence against the posting:
// industry tag overlap, a GenAI stack, and up to three matched keywords.
func matchMarkers(entry *types.ExperienceEntry, critical *types.CriticalKeywords, reqs *types.RequirementsRecord) string {
	entryText := strings.ToLower(entry.Description + " " + strings.Join(entry.Achievements, " "))

	var matches []string
	for _, list := range [][]string{critical.MustMention, critical.Industry, critical.Technologies, critical.Skills} {
		for _, keyword := range list {
			if strings.Contains(entryText, strings.ToLower(keyword)) {
				matches = append(matches, keyword)
			}
		}
	}

	industryMatch := ""
	for _, reqTag := range reqs.IndustryTags {
		for _, entryTag := range entry.Tags {
			if strings.EqualFold(reqTag, entryTag) {
				industryMatch = " [INDUSTRY_MATCH]"
				break
			}
		}
		if industryMatch != "" {
			break
		}
	}

	genAIMatch := ""
	entryTechs := strings.ToLower(strings.Join(entry.Technologies, " "))
	for _, keyword := range genAIKeywords {
		if strings.Contains(entryTechs, keyword) {
			genAIMatch = " [GENAI_MATCH]"
			break
		}
	}

	if len(matches) == 0 && industryMatch == "" && genAIMatch == "" {
		return ""
	}
	if len(matches) > 3 {
		matches = matches[:3]
	}
	return fmt.Sprintf("%s%s [RELEVANT: %s]", industryMatch, genAIMatch, strings.Join(matches, ", "))
}

// PhilosophyText renders the first philosophy item as "Title: Description".
func PhilosophyText(portfolio *types.Portfolio) string {
	items := portfolio.ProfessionalSummary.PhilosophyAndInterests
	if len(items) == 0 {
		return "N/A"
	}
	return items[0].Title + ": " + items[0].Description
}
