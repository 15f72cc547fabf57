package adapt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaldonado/cv-forge/internal/llm"
	"github.com/amaldonado/cv-forge/internal/types"
)

type stubClient struct {
	responses []string
	err       error
	calls     int
	requests  []llm.Request
}

func (s *stubClient) Generate(_ context.Context, req llm.Request) (string, error) {
	s.calls++
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", nil
	}
	response := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return response, nil
}

func (s *stubClient) Close() error { return nil }

func testRequirements() *types.RequirementsRecord {
	return &types.RequirementsRecord{
		Role:         "Backend Engineer",
		Summary:      "Java services for a payments platform.",
		Technologies: []string{"java", "spring boot"},
		Requirements: []string{"5+ years building backend services"},
		IndustryTags: []string{"fintech"},
	}
}

func testPortfolio() *types.Portfolio {
	return &types.Portfolio{
		ProfessionalSummary: types.ProfessionalSummary{
			Short:    "Backend engineer with ten years of experience.",
			Detailed: "Backend engineer with ten years of experience building distributed systems for payments and retail.",
		},
		Skills: []types.SkillCategory{
			{Category: "Languages", Items: []string{"Java", "Python"}},
			{Category: "Platforms", Items: []string{"Spring Boot", "Docker"}},
		},
		SkillProfiles: map[string][]types.SkillCategory{
			"java_backend_architect": {
				{Category: "Languages", Items: []string{"Java", "Kotlin"}},
				{Category: "Frameworks", Items: []string{"Spring Boot"}},
			},
		},
	}
}

func newTestAdapter(t *testing.T, client llm.Client) *Adapter {
	t.Helper()
	adapter, err := NewAdapter(client, nil, false)
	require.NoError(t, err)
	return adapter
}

func TestProfile_CleansModelChatter(t *testing.T) {
	client := &stubClient{responses: []string{
		"Here is the profile:\nExperienced **backend** engineer for payment systems.\nDelivers resilient distributed platforms.",
	}}
	adapter := newTestAdapter(t, client)

	profile := adapter.Profile(context.Background(), testPortfolio(), testRequirements(), types.LanguageEnglish)

	assert.Equal(t, "Experienced backend engineer for payment systems.\nDelivers resilient distributed platforms.", profile)
	assert.Equal(t, 1, client.calls)
}

func TestProfile_SecondCallServedFromCache(t *testing.T) {
	client := &stubClient{responses: []string{"Seasoned engineer focused on payment platforms."}}
	adapter := newTestAdapter(t, client)

	first := adapter.Profile(context.Background(), testPortfolio(), testRequirements(), types.LanguageEnglish)
	second := adapter.Profile(context.Background(), testPortfolio(), testRequirements(), types.LanguageEnglish)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.calls)
}

func TestProfile_FallsBackToShortSummaryOnError(t *testing.T) {
	client := &stubClient{err: errors.New("model unavailable")}
	adapter := newTestAdapter(t, client)
	portfolio := testPortfolio()

	profile := adapter.Profile(context.Background(), portfolio, testRequirements(), types.LanguageSpanish)

	assert.Equal(t, portfolio.ProfessionalSummary.Short, profile)

	// The fallback is cached so a dead model is not retried.
	adapter.Profile(context.Background(), portfolio, testRequirements(), types.LanguageSpanish)
	assert.Equal(t, 1, client.calls)
}

func TestBullets_StripsDisallowedTechnologies(t *testing.T) {
	client := &stubClient{responses: []string{
		"- Built Java services for payment processing\n- Deployed workloads to Kubernetes clusters worldwide",
	}}
	adapter := newTestAdapter(t, client)
	entry := &types.ExperienceEntry{
		Company:      "BigBank",
		Role:         "Senior Engineer",
		Achievements: []string{"Shipped the core billing platform used by every retail team"},
		Technologies: []string{"Java", "Spring Boot", "PostgreSQL"},
	}

	bullets := adapter.Bullets(context.Background(), entry, testRequirements(), types.LanguageEnglish)

	require.Len(t, bullets, 2)
	assert.Equal(t, "Built Java services for payment processing", bullets[0])
	assert.Equal(t, "Deployed workloads to clusters worldwide", bullets[1])
}

func TestBullets_RevertsToOriginalsWhenTooFewSurvive(t *testing.T) {
	client := &stubClient{responses: []string{"- Used TensorFlow and PyTorch models"}}
	adapter := newTestAdapter(t, client)
	entry := &types.ExperienceEntry{
		Company:      "BigBank",
		Role:         "Senior Engineer",
		Achievements: []string{"Shipped the core billing platform used by every retail team", "Led the rollout of the review tooling across four departments"},
		Technologies: []string{"Java"},
	}

	bullets := adapter.Bullets(context.Background(), entry, testRequirements(), types.LanguageEnglish)

	assert.Equal(t, entry.Achievements, bullets)
}

func TestBullets_ModelErrorReturnsCleanedOriginals(t *testing.T) {
	client := &stubClient{err: errors.New("model unavailable")}
	adapter := newTestAdapter(t, client)
	entry := &types.ExperienceEntry{
		Company:      "BigBank",
		Role:         "Senior Engineer",
		Achievements: []string{"- Shipped the core billing platform used by every retail team"},
		Technologies: []string{"Java"},
	}

	bullets := adapter.Bullets(context.Background(), entry, testRequirements(), types.LanguageSpanish)

	require.Len(t, bullets, 1)
	assert.Equal(t, "Shipped the core billing platform used by every retail team", bullets[0])

	adapter.Bullets(context.Background(), entry, testRequirements(), types.LanguageSpanish)
	assert.Equal(t, 1, client.calls)
}

func TestBullets_EmptyAchievementsSkipModel(t *testing.T) {
	client := &stubClient{}
	adapter := newTestAdapter(t, client)
	entry := &types.ExperienceEntry{Company: "BigBank", Role: "Senior Engineer"}

	bullets := adapter.Bullets(context.Background(), entry, testRequirements(), types.LanguageEnglish)

	assert.Nil(t, bullets)
	assert.Zero(t, client.calls)
}

func TestTranslateRole_StripsQuotesAndCaches(t *testing.T) {
	client := &stubClient{responses: []string{`"Software Engineer"`}}
	adapter := newTestAdapter(t, client)

	translated := adapter.TranslateRole(context.Background(), "Ingeniero de Software")
	assert.Equal(t, "Software Engineer", translated)

	again := adapter.TranslateRole(context.Background(), "Ingeniero de Software")
	assert.Equal(t, "Software Engineer", again)
	assert.Equal(t, 1, client.calls)
}

func TestTranslateRole_EmptyResponseKeepsOriginal(t *testing.T) {
	client := &stubClient{responses: []string{""}}
	adapter := newTestAdapter(t, client)

	translated := adapter.TranslateRole(context.Background(), "Arquitecta de Soluciones")

	assert.Equal(t, "Arquitecta de Soluciones", translated)
}

func TestTranslateRole_ErrorKeepsOriginal(t *testing.T) {
	client := &stubClient{err: errors.New("model unavailable")}
	adapter := newTestAdapter(t, client)

	translated := adapter.TranslateRole(context.Background(), "Jefa de Proyecto")

	assert.Equal(t, "Jefa de Proyecto", translated)
}

func TestSelectSkillProfile_ProjectsClassifiedProfile(t *testing.T) {
	client := &stubClient{responses: []string{"java_backend_architect"}}
	adapter := newTestAdapter(t, client)

	category, lines := adapter.SelectSkillProfile(context.Background(), testPortfolio(), testRequirements())

	assert.Equal(t, ProfileJavaBackend, category)
	assert.Equal(t, []string{"Languages: Java, Kotlin", "Frameworks: Spring Boot"}, lines)
}

func TestSelectSkillProfile_ErrorFallsBackToFlatSkills(t *testing.T) {
	client := &stubClient{err: errors.New("model unavailable")}
	adapter := newTestAdapter(t, client)
	portfolio := testPortfolio()
	portfolio.SkillProfiles = nil

	category, lines := adapter.SelectSkillProfile(context.Background(), portfolio, testRequirements())

	assert.Equal(t, ProfileHybridAIJava, category)
	assert.NotEmpty(t, lines)
	assert.Contains(t, lines, "Java")
}

func TestRoleContext_IncludesRoleLanguageAndKeywords(t *testing.T) {
	context := RoleContext(testRequirements(), types.LanguageEnglish)

	assert.Contains(t, context, "Backend Engineer")
	assert.Contains(t, context, "|en|")
}

func TestKey_StableAndContextSensitive(t *testing.T) {
	assert.Equal(t, Key("text", "ctx"), Key("text", "ctx"))
	assert.NotEqual(t, Key("text", "ctx"), Key("text", "other"))
	assert.NotEqual(t, Key("text", "ctx"), Key("other", "ctx"))
}
