package types

// CVContact holds the contact block of a generated CV.
type CVContact struct {
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// CVExperience is one adapted position in the generated CV. Bullets have
// passed fidelity validation (or are the unmodified originals after a
// fallback).
type CVExperience struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	City         string   `json:"city,omitempty"`
	Period       string   `json:"period"`
	Bullets      []string `json:"bullets"`
	Technologies []string `json:"technologies,omitempty"`
}

// CVEducation is one formal degree shown on the generated CV.
type CVEducation struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	City       string `json:"city,omitempty"`
	Period     string `json:"period"`
}

// CVLanguage is one spoken language shown on the generated CV.
type CVLanguage struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// CVDocument is the fully-populated, validated CV content handed to the
// rendering collaborator.
type CVDocument struct {
	FullName   string          `json:"full_name"`
	Title      string          `json:"title"`
	Contact    CVContact       `json:"contact"`
	Profile    string          `json:"profile"`
	KeySkills  []string        `json:"key_skills"`
	Experience []CVExperience  `json:"experience"`
	TechSkills []SkillCategory `json:"tech_skills,omitempty"`
	Education  []CVEducation   `json:"education,omitempty"`
	Languages  []CVLanguage    `json:"languages,omitempty"`
	Language   Language        `json:"language"`
}

// CoverLetter is the fully-populated cover-letter content handed to the
// rendering collaborator. Paragraphs contains only the letter body; greeting
// and signature belong to the renderer.
type CoverLetter struct {
	FullName   string   `json:"full_name"`
	Role       string   `json:"role,omitempty"`
	Company    string   `json:"company,omitempty"`
	Paragraphs []string `json:"paragraphs"`
	Language   Language `json:"language"`
}
