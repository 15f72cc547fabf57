package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaldonado/cv-forge/internal/types"
)

func entry(company, role string, techs, tags []string) types.ExperienceEntry {
	return types.ExperienceEntry{
		Company:      company,
		Role:         role,
		Technologies: techs,
		Tags:         tags,
	}
}

func TestScoreForCV_FullTechMatch(t *testing.T) {
	e := entry("Acme", "Backend Developer", []string{"Java", "Kubernetes"}, nil)
	reqs := &types.RequirementsRecord{Technologies: []string{"java", "kubernetes"}}

	score, matchedTechs, _ := ScoreForCV(&e, reqs)
	assert.InDelta(t, 0.4, score, 0.001)
	assert.ElementsMatch(t, []string{"java", "kubernetes"}, matchedTechs)
}

func TestScoreForCV_PartialSubstringMatch(t *testing.T) {
	e := entry("Acme", "Dev", []string{"Python/FastAPI"}, nil)
	reqs := &types.RequirementsRecord{Technologies: []string{"python"}}

	score, matchedTechs, _ := ScoreForCV(&e, reqs)
	assert.InDelta(t, 0.4, score, 0.001)
	assert.Equal(t, []string{"python"}, matchedTechs)
}

func TestScoreForCV_TagAndRole(t *testing.T) {
	e := entry("Acme", "Senior Engineer", nil, []string{"banking"})
	reqs := &types.RequirementsRecord{
		Role:         "Senior Backend Engineer",
		IndustryTags: []string{"banking"},
	}

	score, _, matchedTags := ScoreForCV(&e, reqs)
	// 0.3 tag + 0.2 role
	assert.InDelta(t, 0.5, score, 0.001)
	assert.Equal(t, []string{"banking"}, matchedTags)
}

func TestScoreForCV_FreeTextCapped(t *testing.T) {
	e := types.ExperienceEntry{
		Company:     "Acme",
		Role:        "Dev",
		Description: "built payments platform with event streaming architecture",
	}
	reqs := &types.RequirementsRecord{
		Summary: "built payments platform with event streaming architecture",
	}

	score, _, _ := ScoreForCV(&e, reqs)
	assert.LessOrEqual(t, score, 0.1+0.001)
	assert.Greater(t, score, 0.0)
}

func TestScoreForLetter_BankingRule(t *testing.T) {
	banking := entry("BigBank", "Architect", nil, []string{"industria_bancaria"})
	other := entry("Shop", "Architect", nil, []string{"retail"})
	reqs := &types.RequirementsRecord{IndustryTags: []string{"banca"}}

	bankingScore, _, _ := ScoreForLetter(&banking, reqs)
	otherScore, _, _ := ScoreForLetter(&other, reqs)
	assert.Greater(t, bankingScore, otherScore)
	assert.GreaterOrEqual(t, bankingScore, 0.5)
}

func TestScoreForLetter_GenAIBonusAndPenalty(t *testing.T) {
	genai := entry("AI Corp", "Engineer", []string{"LangChain", "RAG"}, nil)
	classic := entry("Legacy Corp", "Engineer", []string{"Java"}, nil)
	reqs := &types.RequirementsRecord{Technologies: []string{"llm", "rag"}}

	genaiScore, _, _ := ScoreForLetter(&genai, reqs)
	classicScore, _, _ := ScoreForLetter(&classic, reqs)
	assert.Greater(t, genaiScore, classicScore)
	// Penalty would go negative; the clamp keeps it at zero.
	assert.GreaterOrEqual(t, classicScore, 0.0)
}

func TestScoreForLetter_NoGenAIRequirementNoPenalty(t *testing.T) {
	classic := entry("Legacy Corp", "Engineer", []string{"Java"}, nil)
	reqs := &types.RequirementsRecord{Technologies: []string{"java"}}

	score, _, _ := ScoreForLetter(&classic, reqs)
	assert.InDelta(t, 0.3, score, 0.001)
}

func TestIsAcademic(t *testing.T) {
	assert.True(t, IsAcademic(&types.ExperienceEntry{Company: "Universidad de Madrid", Role: "Profesor"}))
	assert.True(t, IsAcademic(&types.ExperienceEntry{Company: "Acme", Role: "PhD Student"}))
	assert.True(t, IsAcademic(&types.ExperienceEntry{Company: "Code Academy", Role: "Mentor"}))
	assert.False(t, IsAcademic(&types.ExperienceEntry{Company: "BigBank", Role: "Architect"}))
}

func TestRankForCV_FiltersAcademicAndSorts(t *testing.T) {
	portfolio := &types.Portfolio{
		Jobs: []types.ExperienceEntry{
			entry("University of Madrid", "Researcher", []string{"java"}, nil),
			entry("Shop", "Developer", nil, nil),
			entry("BigBank", "Developer", []string{"Java", "Spring Boot"}, nil),
		},
	}
	reqs := &types.RequirementsRecord{Technologies: []string{"java", "spring boot"}}

	ranked := RankForCV(portfolio, reqs)
	require.Len(t, ranked, 2)
	assert.Equal(t, "BigBank", ranked[0].Entry.Company)
	assert.Equal(t, "Shop", ranked[1].Entry.Company)
}

func TestRankForCV_StableOnTies(t *testing.T) {
	portfolio := &types.Portfolio{
		Jobs: []types.ExperienceEntry{
			entry("First", "Dev", nil, nil),
			entry("Second", "Dev", nil, nil),
		},
	}
	reqs := &types.RequirementsRecord{}

	ranked := RankForCV(portfolio, reqs)
	require.Len(t, ranked, 2)
	assert.Equal(t, "First", ranked[0].Entry.Company)
	assert.Equal(t, "Second", ranked[1].Entry.Company)
}

func TestTopForLetter_ReturnsAtMostThree(t *testing.T) {
	portfolio := &types.Portfolio{
		Jobs: []types.ExperienceEntry{
			entry("A", "Dev", []string{"java"}, nil),
			entry("B", "Dev", []string{"java"}, nil),
			entry("C", "Dev", []string{"java"}, nil),
			entry("D", "Dev", []string{"java"}, nil),
		},
	}
	reqs := &types.RequirementsRecord{Technologies: []string{"java"}}

	top := TopForLetter(portfolio, reqs)
	assert.Len(t, top, LetterTopN)
}

func TestStartYear(t *testing.T) {
	tests := []struct {
		duration string
		expected int
	}{
		{"2019 - Present", 2019},
		{"2016 - 2018", 2016},
		{"2020", 2020},
		{"Jan 2021 - Dec 2022", 2021},
		{"", 0},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			assert.Equal(t, tt.expected, StartYear(tt.duration))
		})
	}
}

func TestSortChronological(t *testing.T) {
	entries := []types.RankedEntry{
		{Entry: &types.ExperienceEntry{Company: "Old", Duration: "2010 - 2014"}},
		{Entry: &types.ExperienceEntry{Company: "Current", Duration: "2019 - Present"}},
		{Entry: &types.ExperienceEntry{Company: "Middle", Duration: "2015 - 2019"}},
	}

	SortChronological(entries)
	assert.Equal(t, "Current", entries[0].Entry.Company)
	assert.Equal(t, "Middle", entries[1].Entry.Company)
	assert.Equal(t, "Old", entries[2].Entry.Company)
}
