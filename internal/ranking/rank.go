package ranking

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/amaldonado/cv-forge/internal/types"
)

// LetterTopN is how many entries the cover letter draws evidence from.
const LetterTopN = 3

// educationalKeywords mark an entry company as academic.
var educationalKeywords = []string{
	"universidad", "university", "universitat", "université",
	"escuela", "school", "colegio", "instituto", "institute",
	"academy", "academia", "bootcamp", "curso", "course",
}

// academicRoles mark an entry role as academic.
var academicRoles = []string{"estudiante", "student", "investigador", "researcher", "tesis", "thesis", "titulación"}

// ScoreForCV scores one entry with the CV weight variant.
func ScoreForCV(entry *types.ExperienceEntry, reqs *types.RequirementsRecord) (float64, []string, []string) {
	score := 0.0

	techScore, matchedTechs := computeTechScore(entry, reqs.Technologies)
	score += techScore * cvTechWeight

	tagScore, matchedTags := computeTagScore(entry, reqs.IndustryTags)
	score += tagScore * cvTagWeight

	score += computeRoleScore(entry, reqs.Role) * cvRoleWeight

	freeText := computeFreeTextScore(entry, reqs.Summary) * cvFreeTextWeight
	if freeText > cvFreeTextWeight {
		freeText = cvFreeTextWeight
	}
	score += freeText

	return clamp01(score), matchedTechs, matchedTags
}

// ScoreForLetter scores one entry with the cover-letter weight variant.
// Industry fit dominates, with two special rules: a banking requirement
// strongly boosts entries tagged industria_bancaria, and a GenAI
// requirement boosts entries with a GenAI stack while penalizing those
// without one.
func ScoreForLetter(entry *types.ExperienceEntry, reqs *types.RequirementsRecord) (float64, []string, []string) {
	score := 0.0

	// Industry tags, highest priority.
	var matchedTags []string
	if len(entry.Tags) > 0 && len(reqs.IndustryTags) > 0 {
		_, matchedTags = computeTagScore(entry, reqs.IndustryTags)
		matches := len(matchedTags)

		if requiresBanking(reqs.IndustryTags) && hasTag(entry, bankingEntryTag) {
			score += letterTagWeight
			matches++
		}

		tagScore := float64(matches) / float64(len(reqs.IndustryTags)) * letterTagWeight
		if tagScore > letterTagWeight {
			tagScore = letterTagWeight
		}
		score += tagScore
	}

	// GenAI cluster rule.
	if hasGenAIStack(reqs.Technologies) {
		if hasGenAIStack(entry.Technologies) {
			score += letterGenAIBonus
		} else {
			score -= letterGenAIPenalty
		}
	}

	techScore, matchedTechs := computeTechScore(entry, reqs.Technologies)
	score += techScore * letterTechWeight

	score += computeRoleScore(entry, reqs.Role) * letterRoleWeight

	freeText := computeFreeTextScore(entry, reqs.Summary) * letterFreeTextWeight
	if freeText > letterFreeTextWeight {
		freeText = letterFreeTextWeight
	}
	score += freeText

	return clamp01(score), matchedTechs, matchedTags
}

// ProfessionalEntries filters out academic positions (university
// employers, student and researcher roles). The CV only presents
// professional history; education has its own section.
func ProfessionalEntries(entries []types.ExperienceEntry) []*types.ExperienceEntry {
	var professional []*types.ExperienceEntry
	for i := range entries {
		if IsAcademic(&entries[i]) {
			continue
		}
		professional = append(professional, &entries[i])
	}
	return professional
}

// IsAcademic reports whether an entry is academic rather than
// professional, based on the company name and role.
func IsAcademic(entry *types.ExperienceEntry) bool {
	company := strings.ToLower(entry.Company)
	for _, keyword := range educationalKeywords {
		if strings.Contains(company, keyword) {
			return true
		}
	}

	role := strings.ToLower(entry.Role)
	for _, academic := range academicRoles {
		if strings.Contains(role, academic) {
			return true
		}
	}
	return false
}

// RankForCV scores all professional entries with the CV variant and
// returns them ordered by descending score. Equal scores keep portfolio
// order.
func RankForCV(portfolio *types.Portfolio, reqs *types.RequirementsRecord) []types.RankedEntry {
	return rank(portfolio, reqs, ScoreForCV, 0)
}

// TopForLetter scores all professional entries with the cover-letter
// variant and returns the top LetterTopN.
func TopForLetter(portfolio *types.Portfolio, reqs *types.RequirementsRecord) []types.RankedEntry {
	return rank(portfolio, reqs, ScoreForLetter, LetterTopN)
}

type scoreFunc func(*types.ExperienceEntry, *types.RequirementsRecord) (float64, []string, []string)

func rank(portfolio *types.Portfolio, reqs *types.RequirementsRecord, score scoreFunc, topN int) []types.RankedEntry {
	entries := ProfessionalEntries(portfolio.Jobs)

	ranked := make([]types.RankedEntry, 0, len(entries))
	for _, entry := range entries {
		s, matchedTechs, matchedTags := score(entry, reqs)
		ranked = append(ranked, types.RankedEntry{
			Entry:               entry,
			Score:               s,
			MatchedTechnologies: matchedTechs,
			MatchedTags:         matchedTags,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// StartYear extracts the starting year from a duration string such as
// "2019 - Present" or "2016". Returns 0 when no year is found so
// unparseable entries sort last.
func StartYear(duration string) int {
	if duration == "" {
		return 0
	}

	part := duration
	if idx := strings.Index(duration, " - "); idx >= 0 {
		part = duration[:idx]
	}

	match := yearPattern.FindString(part)
	if match == "" {
		match = yearPattern.FindString(duration)
	}
	if match == "" {
		return 0
	}

	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// SortChronological orders ranked entries most recent first by the
// starting year of each duration. Ties keep their relative order.
func SortChronological(entries []types.RankedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return StartYear(entries[i].Entry.Duration) > StartYear(entries[j].Entry.Duration)
	})
}
