// Package adapt - clean.go strips model chatter from generated content:
// introductory phrases, markdown formatting, bullet glyphs, and section
// labels.
package adapt

import (
	"regexp"
	"strings"
)

// introPhrases are meta-commentary prefixes models prepend despite
// instructions. Lines starting with one are dropped.
var introPhrases = []string{
	"here is the translation",
	"here's the translation",
	"here is the",
	"here's the",
	"here are the",
	"here it is:",
	"translation:",
	"translated text:",
	"translated:",
	"english translation:",
	"output:",
	"result:",
	"the translation is:",
	"these are",
	"the following",
	"aquí",
	"traducción:",
	"estos",
	"salida:",
	"key skills:",
	"competencias clave:",
	"habilidades clave:",
}

var (
	bulletGlyph    = regexp.MustCompile(`^[-•▪▸▶◦‣⁃*]\s*`)
	numberedBullet = regexp.MustCompile(`^\d+[.)]\s*`)
	multiSpace     = regexp.MustCompile(`\s+`)

	markdownHeader  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	sectionLabel    = regexp.MustCompile(`(?mi)^["']?\s*\*{0,2}(Perfil|Profile)\*{0,2}\s*["']?\s*:?\s*`)
	boldSpan        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	orphanBold      = regexp.MustCompile(`\*\*`)
	italicSpan      = regexp.MustCompile(`\*([^*\s]+)\*`)
	doubleSpace     = regexp.MustCompile(`  +`)
	leadingNewlines = regexp.MustCompile(`^\n+`)
)

// CleanResponse drops introductory lines from a model response. When
// firstLineOnly is set (role translations), only the first remaining
// line is returned.
func CleanResponse(response string, firstLineOnly bool) string {
	if response == "" {
		return ""
	}

	var cleaned []string
	for _, line := range strings.Split(response, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))
		if startsWithAny(lower, introPhrases) {
			continue
		}
		cleaned = append(cleaned, line)
	}

	result := strings.TrimSpace(strings.Join(cleaned, "\n"))
	if firstLineOnly {
		result = strings.TrimSpace(strings.SplitN(result, "\n", 2)[0])
	}
	return result
}

// CleanBullet strips leading bullet glyphs, numbering, and collapses
// whitespace.
func CleanBullet(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = bulletGlyph.ReplaceAllString(cleaned, "")
	cleaned = numberedBullet.ReplaceAllString(cleaned, "")
	cleaned = bulletGlyph.ReplaceAllString(cleaned, "")
	cleaned = multiSpace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// CleanBullets applies CleanBullet to each item, dropping empties.
func CleanBullets(bullets []string) []string {
	var cleaned []string
	for _, bullet := range bullets {
		if c := CleanBullet(bullet); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}

// CleanProfileMarkdown removes markdown headers, bold and italic spans,
// and Profile/Perfil section labels from profile text.
func CleanProfileMarkdown(text string) string {
	if text == "" {
		return ""
	}

	text = strings.Trim(strings.TrimSpace(text), `"'`)
	text = markdownHeader.ReplaceAllString(text, "")
	text = sectionLabel.ReplaceAllString(text, "")
	text = boldSpan.ReplaceAllString(text, "$1")
	text = orphanBold.ReplaceAllString(text, "")
	text = italicSpan.ReplaceAllString(text, "$1")
	text = doubleSpace.ReplaceAllString(text, " ")
	text = leadingNewlines.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func startsWithAny(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
