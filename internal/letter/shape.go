package letter

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// MaxParagraphs caps the shaped letter body.
const MaxParagraphs = 4

// longParagraphThreshold triggers starter-based splitting when the model
// collapses the whole letter into one block.
const longParagraphThreshold = 500

var (
	sectionLabel = regexp.MustCompile(`(?i)\*{0,2}(?:SECCI[ÓO]N|SECTION)\s*\d+\*{0,2}`)

	greetingPhrase     = regexp.MustCompile(`(?i)(?:dear|estimado|estimada|querido)\s+\[[^\]]*\][,:]?`)
	bracketPlaceholder = regexp.MustCompile(`(?i)\[(?:date|fecha|your name|tu nombre|your address|tu dirección|city, country|ciudad, país|email address|correo electrónico|phone number|teléfono|hiring manager|gerente de rrhh|gerente)\]`)
)

// closingLines are standalone sign-offs the model adds despite
// instructions. Matched against the whole trimmed line, lowercased.
var closingLines = map[string]bool{
	"saludos cordiales": true,
	"best regards":      true,
	"atentamente":       true,
	"sincerely":         true,
	"cordialmente":      true,
	"respetuosamente":   true,
}

// placeholderFragments drop any line still carrying an unfilled slot.
var placeholderFragments = []string{
	"[date]", "[fecha]", "[your name]", "[tu nombre]", "[your address]",
	"[tu dirección]", "[email]", "[correo]", "[phone]", "[teléfono]",
}

// paragraphStarters locate paragraph boundaries inside a collapsed
// single-block response.
var paragraphStarters = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\.\s+)(La oferta destaca|Mi experiencia|He liderado|En este proyecto|The offer highlights|My experience|I have led)`),
	regexp.MustCompile(`(?i)(\.\s+)(Más allá de la tecnología|Su búsqueda|Además|Beyond technology|Your search)`),
	regexp.MustCompile(`(?i)(\.\s+)(Estoy convencido|Como parte de|Agradezco|I am convinced|As part of|I appreciate)`),
}

// ShapeParagraphs turns a raw letter response into clean body paragraphs:
// section labels, placeholders, greetings and sign-offs are removed, the
// text is split into paragraphs, and the result is regrouped toward the
// four-paragraph structure.
func ShapeParagraphs(content string) []string {
	content = sectionLabel.ReplaceAllString(content, "")
	content = greetingPhrase.ReplaceAllString(content, "")
	content = bracketPlaceholder.ReplaceAllString(content, "")

	paragraphs := collectParagraphs(content)

	if len(paragraphs) == 1 && len(paragraphs[0]) > longParagraphThreshold {
		paragraphs = splitByStarters(paragraphs[0])
	}
	if len(paragraphs) > 0 && len(paragraphs) < MaxParagraphs {
		paragraphs = regroupSentences(paragraphs)
	}
	if len(paragraphs) > MaxParagraphs {
		paragraphs = paragraphs[:MaxParagraphs]
	}
	return paragraphs
}

// collectParagraphs accumulates non-empty lines into paragraphs separated
// by blank lines, dropping greeting, sign-off, and placeholder lines.
func collectParagraphs(content string) []string {
	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if dropLine(line) {
			continue
		}
		current = append(current, line)
	}
	flush()

	return paragraphs
}

func dropLine(line string) bool {
	lower := strings.ToLower(strings.TrimRight(line, ",. "))
	if closingLines[lower] {
		return true
	}
	if strings.HasPrefix(lower, "none") {
		return true
	}
	for _, fragment := range placeholderFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// splitByStarters cuts a collapsed block at known paragraph-opening
// phrases. Returns the original block when no starter is found.
func splitByStarters(block string) []string {
	var cuts []int
	for _, starter := range paragraphStarters {
		for _, loc := range starter.FindAllStringSubmatchIndex(block, -1) {
			// loc[4] is the start of the opening phrase itself.
			cuts = append(cuts, loc[4])
		}
	}
	if len(cuts) == 0 {
		return []string{block}
	}

	seen := make(map[int]bool)
	var ordered []int
	for _, cut := range cuts {
		if !seen[cut] {
			seen[cut] = true
			ordered = append(ordered, cut)
		}
	}
	sort.Ints(ordered)

	var paragraphs []string
	prev := 0
	for _, cut := range ordered {
		if cut > prev {
			if p := strings.TrimSpace(block[prev:cut]); p != "" {
				paragraphs = append(paragraphs, p)
			}
			prev = cut
		}
	}
	if p := strings.TrimSpace(block[prev:]); p != "" {
		paragraphs = append(paragraphs, p)
	}

	if len(paragraphs) < 2 {
		return []string{block}
	}
	return paragraphs
}

// regroupSentences splits long paragraphs into 2-3 sentence chunks to
// approach the target structure.
func regroupSentences(paragraphs []string) []string {
	var regrouped []string
	for _, paragraph := range paragraphs {
		sentences := splitSentences(paragraph)
		if len(sentences) <= 4 {
			regrouped = append(regrouped, paragraph)
			continue
		}

		chunkSize := len(sentences) / 2
		if chunkSize < 2 {
			chunkSize = 2
		}
		for i := 0; i < len(sentences); i += chunkSize {
			end := i + chunkSize
			if end > len(sentences) {
				end = len(sentences)
			}
			if chunk := strings.TrimSpace(strings.Join(sentences[i:end], " ")); chunk != "" {
				regrouped = append(regrouped, chunk)
			}
		}
	}

	if len(regrouped) > MaxParagraphs {
		regrouped = regrouped[:MaxParagraphs]
	}
	return regrouped
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if isSentenceEnd(runes[i]) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
