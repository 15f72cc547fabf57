// Package render provides the default document sink: plain-text
// rendering of CV and cover-letter content. Presentation formats such as
// PDF or HTML belong to external collaborators behind the same contract.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amaldonado/cv-forge/internal/types"
)

// Error represents a rendering failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// TextRenderer writes documents as plain text, to a writer or to files
// in an output directory.
type TextRenderer struct {
	out io.Writer
	dir string
}

// NewTextRenderer creates a renderer writing to out. If out is nil,
// documents go to stdout.
func NewTextRenderer(out io.Writer) *TextRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TextRenderer{out: out}
}

// NewFileRenderer creates a renderer writing one file per document into dir.
func NewFileRenderer(dir string) *TextRenderer {
	return &TextRenderer{dir: dir}
}

// RenderCV writes the CV document.
func (r *TextRenderer) RenderCV(_ context.Context, doc *types.CVDocument) error {
	return r.write("cv", FormatCV(doc))
}

// RenderLetter writes the cover-letter document.
func (r *TextRenderer) RenderLetter(_ context.Context, letter *types.CoverLetter) error {
	return r.write("cover_letter", FormatLetter(letter))
}

func (r *TextRenderer) write(kind, content string) error {
	if r.dir == "" {
		if _, err := io.WriteString(r.out, content); err != nil {
			return &Error{Message: "writing " + kind, Cause: err}
		}
		return nil
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return &Error{Message: "creating output directory", Cause: err}
	}
	path := filepath.Join(r.dir, kind+".txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &Error{Message: "writing " + path, Cause: err}
	}
	return nil
}

// FormatCV renders a CV document as plain text.
func FormatCV(doc *types.CVDocument) string {
	var sb strings.Builder

	sb.WriteString(doc.FullName + "\n")
	sb.WriteString(doc.Title + "\n")
	sb.WriteString(formatContact(doc.Contact) + "\n\n")

	sb.WriteString(sectionTitle("Profile", "Perfil", doc.Language) + "\n")
	sb.WriteString(doc.Profile + "\n\n")

	if len(doc.KeySkills) > 0 {
		sb.WriteString(sectionTitle("Key Skills", "Competencias Clave", doc.Language) + "\n")
		for _, skill := range doc.KeySkills {
			sb.WriteString("- " + skill + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(sectionTitle("Experience", "Experiencia", doc.Language) + "\n")
	for _, exp := range doc.Experience {
		sb.WriteString(fmt.Sprintf("%s | %s", exp.Role, exp.Company))
		if exp.City != "" {
			sb.WriteString(" | " + exp.City)
		}
		sb.WriteString(" | " + exp.Period + "\n")
		for _, bullet := range exp.Bullets {
			sb.WriteString("  - " + bullet + "\n")
		}
		if len(exp.Technologies) > 0 {
			sb.WriteString("  [" + strings.Join(exp.Technologies, ", ") + "]\n")
		}
		sb.WriteString("\n")
	}

	if len(doc.TechSkills) > 0 {
		sb.WriteString(sectionTitle("Technical Skills", "Habilidades Técnicas", doc.Language) + "\n")
		for _, category := range doc.TechSkills {
			sb.WriteString(category.Category + ": " + strings.Join(category.Items, ", ") + "\n")
		}
		sb.WriteString("\n")
	}

	if len(doc.Education) > 0 {
		sb.WriteString(sectionTitle("Education", "Educación", doc.Language) + "\n")
		for _, edu := range doc.Education {
			sb.WriteString(edu.Degree + " | " + edu.University)
			if edu.City != "" {
				sb.WriteString(" | " + edu.City)
			}
			sb.WriteString(" | " + edu.Period + "\n")
		}
		sb.WriteString("\n")
	}

	if len(doc.Languages) > 0 {
		sb.WriteString(sectionTitle("Languages", "Idiomas", doc.Language) + "\n")
		for _, lang := range doc.Languages {
			sb.WriteString(lang.Language + ": " + lang.Level + "\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// FormatLetter renders a cover letter as plain text. Greeting and
// signature are added here, not generated.
func FormatLetter(letter *types.CoverLetter) string {
	var sb strings.Builder

	if letter.Language == types.LanguageEnglish {
		sb.WriteString("Dear Hiring Team,\n\n")
	} else {
		sb.WriteString("Estimado equipo de selección:\n\n")
	}

	for _, paragraph := range letter.Paragraphs {
		sb.WriteString(paragraph + "\n\n")
	}

	if letter.Language == types.LanguageEnglish {
		sb.WriteString("Best regards,\n")
	} else {
		sb.WriteString("Atentamente,\n")
	}
	sb.WriteString(letter.FullName + "\n")

	return sb.String()
}

func formatContact(contact types.CVContact) string {
	parts := []string{contact.Email}
	for _, optional := range []string{contact.Phone, contact.Portfolio, contact.LinkedIn, contact.GitHub} {
		if optional != "" {
			parts = append(parts, optional)
		}
	}
	return strings.Join(parts, " | ")
}

func sectionTitle(english, spanish string, lang types.Language) string {
	title := spanish
	if lang == types.LanguageEnglish {
		title = english
	}
	return strings.ToUpper(title)
}
