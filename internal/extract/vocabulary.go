// Package extract - vocabulary.go holds the keyword tables and patterns
// the analyzer scans postings with.
package extract

import "regexp"

// techVocabulary lists the technology terms recognized in postings.
// Matching is case-insensitive substring containment.
var techVocabulary = []string{
	"python", "java", "javascript", "typescript", "go", "rust", "c++", "c#", "ruby",
	"react", "vue", "angular", "node.js", "spring boot", "django", "fastapi", "flask",
	"aws", "gcp", "azure", "docker", "kubernetes", "terraform", "ansible",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"machine learning", "deep learning", "ai", "ml", "nlp", "computer vision",
	"microservices", "rest api", "graphql", "grpc",
	"agile", "scrum", "ci/cd", "devops", "tdd", "bdd",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
	"kafka", "rabbitmq", "message queue",
	"git", "github", "gitlab", "jenkins", "github actions",
}

// industryVocabulary lists sector terms in English and Spanish.
var industryVocabulary = []string{
	"banking", "finance", "fintech", "bancario", "financiero",
	"retail", "e-commerce", "comercio",
	"healthcare", "health", "salud", "sanitario",
	"education", "educación", "edtech",
	"ai", "ml", "startup", "saas", "b2b", "b2c",
	"telecom", "telecomunicaciones",
	"government", "gobierno", "public sector",
}

// rolePatterns extract a job title from posting text. Ordered by
// specificity: hiring phrases first, then bare title shapes, then
// labeled fields. English and Spanish variants.
var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:looking for|seeking|hiring|we are looking for)\s+(?:a\s+)?([A-Z][a-zA-Z\s]+(?:Engineer|Developer|Architect|Manager|Lead|Specialist|Analyst|Consultant|Scientist))`),
	regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]+(?:Engineer|Developer|Architect|Manager|Lead|Specialist|Analyst|Consultant|Scientist))`),
	regexp.MustCompile(`(?i)(?:buscar|buscamos|estamos buscando|se busca)\s+(?:un|una|el|la)?\s+([A-ZÁÉÍÓÚÑ][a-zA-ZáéíóúñÁÉÍÓÚÑ\s]{5,}(?:Ingeniero|Desarrollador|Arquitecto|Manager|Líder|Especialista|Analista|Consultor|Científico))`),
	regexp.MustCompile(`(?i)(?:puesto|posición|rol|trabajo|vacante)[:\s]+([A-ZÁÉÍÓÚÑ][a-zA-ZáéíóúñÁÉÍÓÚÑ\s]{5,})`),
	regexp.MustCompile(`(?i)position[:\s]+([A-ZÁÉÍÓÚÑ][a-zA-ZáéíóúñÁÉÍÓÚÑ\s]+)`),
	regexp.MustCompile(`(?i)role[:\s]+([A-ZÁÉÍÓÚÑ][a-zA-ZáéíóúñÁÉÍÓÚÑ\s]+)`),
	regexp.MustCompile(`(?i)title[:\s]+([A-ZÁÉÍÓÚÑ][a-zA-ZáéíóúñÁÉÍÓÚÑ\s]+)`),
}

// experiencePatterns capture minimum years of experience, English and Spanish.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*of\s*experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*años?\s*de\s*experiencia`),
	regexp.MustCompile(`(?i)minimum\s*(\d+)\s*years?`),
	regexp.MustCompile(`(?i)mínimo\s*(\d+)\s*años?`),
}

// educationPattern pairs a detection regex with a stable identifier
// reported in the extracted record.
type educationPattern struct {
	id string
	re *regexp.Regexp
}

var educationPatterns = []educationPattern{
	{"bachelor", regexp.MustCompile(`(?i)bachelor.*(?:degree|science|engineering)`)},
	{"master", regexp.MustCompile(`(?i)master.*(?:degree|science)`)},
	{"phd", regexp.MustCompile(`(?i)phd|doctorate`)},
	{"licenciatura", regexp.MustCompile(`(?i)licenciatura`)},
	{"ingenieria", regexp.MustCompile(`(?i)ingeniería`)},
	{"grado", regexp.MustCompile(`(?i)grado`)},
}

// bulletLine matches bullet points and numbered list items.
var bulletLine = regexp.MustCompile(`^[-*•]\s+|^\d+[.)]\s+`)

// sectionHeader matches capitalized lines ending in a colon.
var sectionHeader = regexp.MustCompile(`^[A-Z].*:$`)

// requirementTriggers flag requirement lines outside bullet lists.
var requirementTriggers = []string{"required", "must have", "requisito", "debe tener"}

// responsibilityHeaders open a responsibilities section.
var responsibilityHeaders = []string{"responsibilities", "duties", "responsabilidades", "funciones"}
