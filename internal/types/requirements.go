// Package types defines the shared data structures passed between pipeline stages.
package types

// RequirementsRecord holds the structured requirements extracted from a job
// description. All fields are derived deterministically by pattern matching;
// no field is ever populated by the language model.
type RequirementsRecord struct {
	Role                  string   `json:"role,omitempty"`
	Company               string   `json:"company,omitempty"`
	Summary               string   `json:"summary"`
	Technologies          []string `json:"technologies"`
	Requirements          []string `json:"requirements"`
	Responsibilities      []string `json:"responsibilities"`
	IndustryTags          []string `json:"industry_tags"`
	MinYearsExperience    int      `json:"min_years_experience,omitempty"` // 0 means not found
	EducationRequirements []string `json:"education_requirements,omitempty"`
}

// Language identifies one of the two supported output locales.
type Language string

// Supported output languages.
const (
	LanguageSpanish Language = "es"
	LanguageEnglish Language = "en"
)
