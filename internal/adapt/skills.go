// Package adapt - skills.go selects the Key Skills section: a
// classification call picks one of the pre-curated skill profiles, and
// the section is projected from the portfolio with no generation, so
// nothing can be invented.
package adapt

import (
	"strings"

	"github.com/amaldonado/cv-forge/internal/types"
)

// ProfileCategory identifies one of the pre-curated skill profiles.
type ProfileCategory string

const (
	ProfileIASpecialist     ProfileCategory = "ia_specialist"
	ProfileJavaBackend      ProfileCategory = "java_backend_architect"
	ProfileHybridAIJava     ProfileCategory = "hybrid_ai_java"
	ProfileTechnicalLeader  ProfileCategory = "technical_leader"
	defaultProfileCategory                  = ProfileHybridAIJava
)

// ParseProfileCategory maps a classification response to a profile
// category. Exact profile names are checked first, then fuzzy keyword
// matching. Unrecognized responses return false.
func ParseProfileCategory(response string, profiles map[string][]types.SkillCategory) (ProfileCategory, bool) {
	if response == "" {
		return "", false
	}

	lower := strings.ToLower(strings.TrimSpace(response))

	for id := range profiles {
		if strings.Contains(lower, strings.ToLower(id)) {
			return ProfileCategory(id), true
		}
	}

	switch {
	case containsAny(lower, "ia_specialist", "ai specialist", "ml specialist"):
		return ProfileIASpecialist, true
	case containsAny(lower, "java_backend", "java backend", "backend architect"):
		return ProfileJavaBackend, true
	case containsAny(lower, "hybrid", "ai java", "both"):
		return ProfileHybridAIJava, true
	case containsAny(lower, "technical_leader", "tech lead", "cto", "engineering manager", "leader"):
		return ProfileTechnicalLeader, true
	}

	return "", false
}

// FormatSkillProfile renders a skill profile as one line per category,
// "Category: item1, item2, ...".
func FormatSkillProfile(categories []types.SkillCategory) []string {
	var lines []string
	for _, category := range categories {
		if len(category.Items) == 0 {
			continue
		}
		lines = append(lines, category.Category+": "+strings.Join(category.Items, ", "))
	}
	return lines
}

// focusKeywords drive PrioritizeSkills' view of what the posting is about.
var focusKeywords = map[string][]string{
	"backend":  {"backend", "back-end", "java", "spring", "microservices", "microservicios", "api", "rest"},
	"frontend": {"frontend", "front-end", "react", "angular", "vue", "ui", "ux"},
	"ai_ml":    {"ai", "ml", "machine learning", "deep learning", "neural", "tensorflow", "pytorch", "nlp", "computer vision", "inteligencia artificial"},
	"cloud":    {"aws", "gcp", "azure", "cloud", "s3", "ec2", "lambda"},
	"devops":   {"devops", "docker", "kubernetes", "ci/cd", "jenkins", "terraform"},
}

var aiMLTechs = []string{
	"python", "tensorflow", "pytorch", "opencv", "nlp", "rag", "llm", "gemini",
	"huggingface", "computer vision", "visión por computador", "cnn",
	"deep learning", "keras", "scikit-learn",
}

var frontendTechs = []string{"react", "angular", "vue", "javascript", "typescript", "html", "css"}

// PrioritizeSkills is the model-free fallback when no skill profile can
// be selected: it filters flat portfolio skills against the posting,
// dropping off-focus stacks and putting direct matches first.
func PrioritizeSkills(skills []string, reqs *types.RequirementsRecord) []string {
	if len(skills) == 0 {
		return nil
	}

	jobTechs := make([]string, len(reqs.Technologies))
	for i, tech := range reqs.Technologies {
		jobTechs[i] = strings.ToLower(tech)
	}
	focusText := strings.ToLower(reqs.Role) + " " + strings.ToLower(reqs.Summary)

	focus := make(map[string]bool)
	for area, kws := range focusKeywords {
		focus[area] = containsAny(focusText, kws...)
	}

	var matching, relevant []string
	for _, skill := range skills {
		lower := strings.ToLower(skill)

		matchesJob := false
		for _, jobTech := range jobTechs {
			if strings.Contains(lower, jobTech) || strings.Contains(jobTech, lower) {
				matchesJob = true
				break
			}
		}
		isAIML := containsAny(lower, aiMLTechs...)
		isFrontend := containsAny(lower, frontendTechs...)

		// Off-focus stacks are dropped outright.
		if focus["backend"] && !focus["ai_ml"] && isAIML {
			continue
		}
		if focus["backend"] && !focus["frontend"] && isFrontend {
			continue
		}
		if focus["frontend"] && !focus["backend"] && !matchesJob &&
			containsAny(lower, "java", "spring boot", "spring", "microservices", "microservicios") {
			continue
		}

		switch {
		case matchesJob:
			matching = append(matching, skill)
		case isAIML && focus["ai_ml"]:
			relevant = append(relevant, skill)
		case isFrontend && focus["frontend"]:
			relevant = append(relevant, skill)
		case focus["backend"] && containsAny(lower, "java", "spring", "microservices", "microservicios", "backend", "api"):
			relevant = append(relevant, skill)
		case focus["cloud"] && containsAny(lower, "aws", "gcp", "azure", "cloud"):
			relevant = append(relevant, skill)
		case focus["devops"] && containsAny(lower, "docker", "kubernetes", "jenkins", "ci/cd", "devops"):
			relevant = append(relevant, skill)
		default:
			if len(matching)+len(relevant) < 8 {
				relevant = append(relevant, skill)
			}
		}
	}

	prioritized := append(matching, relevant...)

	seen := make(map[string]bool)
	var result []string
	for _, skill := range prioritized {
		lower := strings.ToLower(skill)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		result = append(result, skill)
	}

	if len(result) == 0 {
		return skills
	}
	return result
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
