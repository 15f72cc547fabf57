// Package adapt - validate.go enforces the technology allow-list on
// generated bullets. Generation is untrusted: anything the model claims
// must be backed by the entry's own technology list.
package adapt

import (
	"regexp"
	"strings"
)

// minBulletLength is the shortest a bullet may be after forbidden terms
// are stripped; shorter remnants are dropped.
const minBulletLength = 20

// minValidBullets is the threshold below which validation gives up and
// returns the original bullets instead.
const minValidBullets = 2

// MaxBullets caps the adapted bullet list per position.
const MaxBullets = 5

// techLexicon is the fixed vocabulary scanned for technology claims.
// A term found here but absent from the allow-list is a hallucination.
var techLexicon = []string{
	"aws", "azure", "gcp", "google cloud", "python", "java", "go", "golang",
	"javascript", "typescript", "docker", "kubernetes", "k8s", "terraform",
	"ansible", "jenkins", "gitlab", "github", "spring", "spring boot",
	"react", "vue", "angular", "node.js", "express", "fastapi", "django",
	"flask", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "jupyter",
	"langchain", "openai", "huggingface", "rag", "llm", "llms", "genai",
	"machine learning", "deep learning", "ai", "ml", "nlp", "computer vision",
}

var nonWord = regexp.MustCompile(`[^\w]`)
var collapseSpace = regexp.MustCompile(`\s+`)

// ValidateBullets checks generated bullets against the entry's allowed
// technologies. Bullets mentioning technologies outside the allow-list
// get the offending terms stripped; if too little text remains the
// bullet is dropped. When fewer than two bullets survive, the original
// bullets are returned instead.
func ValidateBullets(bullets, allowedTechnologies, originalBullets []string) []string {
	if len(bullets) == 0 {
		return capBullets(originalBullets)
	}
	if len(allowedTechnologies) == 0 {
		return capBullets(bullets)
	}

	allowed := make([]string, len(allowedTechnologies))
	for i, tech := range allowedTechnologies {
		allowed[i] = strings.ToLower(tech)
	}

	var validated []string
	for _, bullet := range bullets {
		if bullet == "" {
			continue
		}

		forbidden := forbiddenTerms(bullet, allowed)
		if len(forbidden) == 0 {
			validated = append(validated, bullet)
			continue
		}

		cleaned := stripTerms(bullet, forbidden)
		if len(cleaned) > minBulletLength {
			validated = append(validated, cleaned)
		}
	}

	if len(validated) < minValidBullets {
		return capBullets(originalBullets)
	}
	return capBullets(validated)
}

// forbiddenTerms returns lexicon terms present in the bullet but not
// covered by the allow-list. Allow-list matching is bidirectional
// substring so "aws" covers "aws s3" and vice versa.
func forbiddenTerms(bullet string, allowed []string) []string {
	lower := strings.ToLower(bullet)
	seen := make(map[string]bool)
	var forbidden []string

	check := func(term string) {
		if seen[term] {
			return
		}
		seen[term] = true
		if !termAllowed(term, allowed) {
			forbidden = append(forbidden, term)
		}
	}

	for _, term := range techLexicon {
		if strings.Contains(lower, term) {
			check(term)
		}
	}

	// Word-level pass catches punctuation-wrapped mentions like "(AWS)".
	for _, word := range strings.Fields(lower) {
		word = nonWord.ReplaceAllString(word, "")
		if len(word) <= 2 {
			continue
		}
		for _, term := range techLexicon {
			if word == term {
				check(term)
				break
			}
		}
	}

	return forbidden
}

func termAllowed(term string, allowed []string) bool {
	for _, a := range allowed {
		if strings.Contains(a, term) || strings.Contains(term, a) {
			return true
		}
	}
	return false
}

func stripTerms(bullet string, terms []string) string {
	cleaned := bullet
	for _, term := range terms {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(collapseSpace.ReplaceAllString(cleaned, " "))
}

func capBullets(bullets []string) []string {
	if len(bullets) > MaxBullets {
		return bullets[:MaxBullets]
	}
	return bullets
}
