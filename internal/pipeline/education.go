package pipeline

import (
	"strings"

	"github.com/amaldonado/cv-forge/internal/types"
)

// formalDegrees are the degree titles carried into the CV; courses and
// bootcamp certificates stay out of the education section.
var formalDegrees = []string{
	"ingeniería civil en informática",
	"máster en inteligencia artificial",
	"master en inteligencia artificial",
}

// degreeTranslations maps Spanish degree titles to their English form.
var degreeTranslations = []struct {
	match       string
	translation string
}{
	{"máster en inteligencia artificial", "Master's in Artificial Intelligence"},
	{"master en inteligencia artificial", "Master's in Artificial Intelligence"},
	{"ingeniería civil en informática", "Computer Science Engineering"},
}

// institutionLocations maps known institutions to their city line.
var institutionLocations = []struct {
	match    string
	location string
}{
	{"universitat politècnica de catalunya", "Barcelona, España"},
	{"upc", "Barcelona, España"},
	{"universidad de santiago de chile", "Santiago, Chile"},
	{"usach", "Santiago, Chile"},
	{"inacap", "Chile"},
	{"hackio", "Online"},
	{"thepower", "Online"},
	{"the power", "Online"},
}

// BuildEducation selects formal degrees from the portfolio and projects
// them into CV education entries, translating degree titles for English
// output and inferring the institution city when known.
func BuildEducation(entries []types.EducationEntry, lang types.Language) []types.CVEducation {
	var education []types.CVEducation
	for _, entry := range entries {
		if !isFormalDegree(entry.Degree) {
			continue
		}

		degree := entry.Degree
		if lang == types.LanguageEnglish {
			degree = TranslateDegree(degree)
		}

		education = append(education, types.CVEducation{
			Degree:     degree,
			University: entry.Institution,
			City:       InferEducationCity(entry.Institution),
			Period:     entry.Period,
		})
	}
	return education
}

func isFormalDegree(degree string) bool {
	lower := strings.ToLower(degree)
	for _, formal := range formalDegrees {
		if strings.Contains(lower, formal) {
			return true
		}
	}
	return false
}

// TranslateDegree translates known Spanish degree titles to English.
// Unknown titles pass through unchanged.
func TranslateDegree(degree string) string {
	lower := strings.ToLower(degree)
	for _, entry := range degreeTranslations {
		if strings.Contains(lower, entry.match) {
			return entry.translation
		}
	}
	return degree
}

// InferEducationCity returns the city line for a known institution, or
// empty when the institution is not recognized.
func InferEducationCity(institution string) string {
	lower := strings.ToLower(institution)
	for _, entry := range institutionLocations {
		if strings.Contains(lower, entry.match) {
			return entry.location
		}
	}
	return ""
}
