package types

// PersonalInfo holds the candidate's identity and contact details.
type PersonalInfo struct {
	Name     string `yaml:"name" validate:"required"`
	Title    string `yaml:"title" validate:"required"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email" validate:"required,email"`
	Location string `yaml:"location"`
	Website  string `yaml:"website"`
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
}

// ProfessionalSummary holds the candidate's profile text in two lengths.
// Short is the fallback profile used when adaptation fails.
type ProfessionalSummary struct {
	Short                  string            `yaml:"short" validate:"required"`
	Detailed               string            `yaml:"detailed" validate:"required"`
	PhilosophyAndInterests []PhilosophyItem  `yaml:"philosophy_and_interests"`
}

// PhilosophyItem is a titled statement of working philosophy, used by the
// cover-letter differentiator paragraph.
type PhilosophyItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ExperienceEntry is one position in the candidate's history. Technologies is
// authoritative: it is the allow-list that bounds what adapted content for
// this entry may claim.
type ExperienceEntry struct {
	Company      string   `yaml:"company" validate:"required"`
	Role         string   `yaml:"role" validate:"required"`
	Duration     string   `yaml:"duration"`
	Location     string   `yaml:"location"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Technologies []string `yaml:"technologies"`
	Tags         []string `yaml:"tags"`
}

// AllowList returns the entry's technology allow-list.
func (e *ExperienceEntry) AllowList() []string {
	return e.Technologies
}

// EducationEntry is one degree or course in the candidate's history.
type EducationEntry struct {
	Degree      string `yaml:"degree" validate:"required"`
	Institution string `yaml:"institution" validate:"required"`
	Period      string `yaml:"period"`
	Details     string `yaml:"details"`
}

// SkillCategory groups related skills under a named category.
type SkillCategory struct {
	Category string   `yaml:"category" validate:"required"`
	Items    []string `yaml:"items" validate:"required,min=1"`
}

// LanguageInfo describes the candidate's proficiency in a spoken language.
type LanguageInfo struct {
	Name  string `yaml:"name" validate:"required"`
	Level string `yaml:"level" validate:"required"`
}

// Portfolio is the complete personal-history dataset loaded from YAML. It is
// ground truth: the pipeline reads it but never modifies it.
type Portfolio struct {
	PersonalInfo        PersonalInfo               `yaml:"personal_info" validate:"required"`
	ProfessionalSummary ProfessionalSummary        `yaml:"professional_summary" validate:"required"`
	Jobs                []ExperienceEntry          `yaml:"jobs" validate:"required,min=1,dive"`
	Education           []EducationEntry           `yaml:"education" validate:"dive"`
	Skills              []SkillCategory            `yaml:"skills" validate:"dive"`
	Languages           []LanguageInfo             `yaml:"languages" validate:"dive"`
	SkillProfiles       map[string][]SkillCategory `yaml:"cv_skill_profiles"`
}
