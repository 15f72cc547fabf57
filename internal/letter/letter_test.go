package letter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaldonado/cv-forge/internal/llm"
	"github.com/amaldonado/cv-forge/internal/types"
)

type stubClient struct {
	response string
	err      error
	calls    int
	requests []llm.Request
}

func (s *stubClient) Generate(_ context.Context, req llm.Request) (string, error) {
	s.calls++
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Close() error { return nil }

func letterRequirements() *types.RequirementsRecord {
	return &types.RequirementsRecord{
		Role:         "GenAI Engineer",
		Summary:      "Building LLM applications for banking clients.",
		Technologies: []string{"python", "langchain", "rag"},
		IndustryTags: []string{"banca"},
	}
}

func letterPortfolio() *types.Portfolio {
	return &types.Portfolio{
		ProfessionalSummary: types.ProfessionalSummary{
			Short:    "AI engineer.",
			Detailed: "AI engineer with banking experience.",
			PhilosophyAndInterests: []types.PhilosophyItem{
				{Title: "Product Engineer", Description: "Understand the business why before designing the solution."},
			},
		},
	}
}

func bankingEntry() *types.ExperienceEntry {
	return &types.ExperienceEntry{
		Company:      "BigBank",
		Role:         "AI Engineer",
		Duration:     "2021 - Presente",
		Description:  "Built RAG assistants for retail banking.",
		Achievements: []string{"Deployed an LLM assistant used by four thousand agents"},
		Technologies: []string{"Python", "LangChain", "RAG"},
		Tags:         []string{"industria_bancaria", "banca"},
	}
}

func TestGenerate_ShapesResponseIntoParagraphs(t *testing.T) {
	client := &stubClient{response: "First paragraph about the role.\n\nSecond paragraph with evidence.\n\nThird paragraph on philosophy.\n\nClosing paragraph."}
	generator := NewGenerator(client, false)
	critical := &types.CriticalKeywords{MustMention: []string{"Genai", "Llm"}, Industry: []string{"banca"}}

	paragraphs, err := generator.Generate(context.Background(), letterPortfolio(), letterRequirements(), critical,
		[]types.RankedEntry{{Entry: bankingEntry(), Score: 1.0}}, "", types.LanguageSpanish)

	require.NoError(t, err)
	require.Len(t, paragraphs, 4)
	assert.Equal(t, "First paragraph about the role.", paragraphs[0])
	assert.Equal(t, 1, client.calls)
}

func TestGenerate_PromptCarriesKeywordsAndEvidence(t *testing.T) {
	client := &stubClient{response: "One.\n\nTwo.\n\nThree.\n\nFour."}
	generator := NewGenerator(client, false)
	critical := &types.CriticalKeywords{MustMention: []string{"Genai"}, Industry: []string{"banca"}}

	_, err := generator.Generate(context.Background(), letterPortfolio(), letterRequirements(), critical,
		[]types.RankedEntry{{Entry: bankingEntry(), Score: 1.0}}, "Fintech scale-up from Madrid", types.LanguageEnglish)

	require.NoError(t, err)
	require.Len(t, client.requests, 1)
	prompt := client.requests[0].Prompt
	assert.Contains(t, prompt, "Genai")
	assert.Contains(t, prompt, "BANKING")
	assert.Contains(t, prompt, "GenAI/LLM")
	assert.Contains(t, prompt, "PROJECT 1: BigBank - AI Engineer")
	assert.Contains(t, prompt, "[INDUSTRY_MATCH]")
	assert.Contains(t, prompt, "[GENAI_MATCH]")
	assert.Contains(t, prompt, "Fintech scale-up from Madrid")
	assert.Contains(t, prompt, "Product Engineer: Understand the business why before designing the solution.")
	assert.InDelta(t, 0.4, client.requests[0].Temperature, 0.001)
	assert.Equal(t, 1200, client.requests[0].MaxTokens)
}

func TestGenerate_ModelErrorIsReturned(t *testing.T) {
	client := &stubClient{err: errors.New("model unavailable")}
	generator := NewGenerator(client, false)

	_, err := generator.Generate(context.Background(), letterPortfolio(), letterRequirements(),
		&types.CriticalKeywords{}, nil, "", types.LanguageSpanish)

	assert.Error(t, err)
}

func TestMainKeyword_PrefersMustMention(t *testing.T) {
	critical := &types.CriticalKeywords{MustMention: []string{"Rag", "Llm"}}
	assert.Equal(t, "Rag", MainKeyword(critical, letterRequirements()))
}

func TestMainKeyword_FallsBackToTruncatedRole(t *testing.T) {
	reqs := &types.RequirementsRecord{Role: strings.Repeat("Engineer ", 10)}
	keyword := MainKeyword(&types.CriticalKeywords{}, reqs)
	assert.LessOrEqual(t, len(keyword), 50)
	assert.True(t, strings.HasPrefix(keyword, "Engineer"))
}

func TestFormatRequirements_OmitsEmptyFields(t *testing.T) {
	reqs := &types.RequirementsRecord{Summary: "A short summary."}
	formatted := FormatRequirements(reqs, &types.CriticalKeywords{})

	assert.Equal(t, "Summary: A short summary.", formatted)
}

func TestExperienceContext_NoInstructionsForGenericPosting(t *testing.T) {
	reqs := &types.RequirementsRecord{Role: "Backend Engineer", Summary: "Java services."}
	context := ExperienceContext(nil, &types.CriticalKeywords{}, reqs)

	assert.NotContains(t, context, "EVIDENCE MAPPING")
	assert.Contains(t, context, "RELEVANT EXPERIENCE")
}

func TestShapeParagraphs_StripsLabelsPlaceholdersAndSignoffs(t *testing.T) {
	raw := "**SECTION 1**\nDear [Hiring Manager],\n\nI am writing about the role.\n\nSECCIÓN 2\nMy experience proves the fit.\n\n[Your Name]\nBest regards,\n\nThank you for your time."

	paragraphs := ShapeParagraphs(raw)

	require.Len(t, paragraphs, 3)
	assert.Equal(t, "I am writing about the role.", paragraphs[0])
	assert.Equal(t, "My experience proves the fit.", paragraphs[1])
	assert.Equal(t, "Thank you for your time.", paragraphs[2])
}

func TestShapeParagraphs_SplitsCollapsedBlock(t *testing.T) {
	block := "Me dirijo a usted para presentar mi perfil como ingeniero senior, con amplia experiencia en sistemas distribuidos y plataformas de pago que avalan mi candidatura para este puesto. " +
		"La oferta destaca la necesidad de experiencia en GenAI y mi especialización se centra precisamente en esta área, donde he construido asistentes en producción. " +
		"Más allá de la tecnología, su búsqueda de visión de producto resuena con mi filosofía central de entender el negocio antes de diseñar. " +
		"Estoy convencido de que mi perfil híbrido puede ser un activo valioso y agradezco su tiempo."

	paragraphs := ShapeParagraphs(block)

	require.Len(t, paragraphs, 4)
	assert.True(t, strings.HasPrefix(paragraphs[1], "La oferta destaca"))
	assert.True(t, strings.HasPrefix(paragraphs[2], "Más allá de la tecnología"))
	assert.True(t, strings.HasPrefix(paragraphs[3], "Estoy convencido"))
}

func TestShapeParagraphs_CapsAtFourParagraphs(t *testing.T) {
	raw := "One.\n\nTwo.\n\nThree.\n\nFour.\n\nFive."
	assert.Len(t, ShapeParagraphs(raw), 4)
}

func TestShapeParagraphs_EmptyInput(t *testing.T) {
	assert.Empty(t, ShapeParagraphs(""))
}
