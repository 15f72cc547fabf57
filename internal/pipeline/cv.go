// Package pipeline provides the high-level orchestration for CV and
// cover-letter generation.
package pipeline

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/amaldonado/cv-forge/internal/adapt"
	"github.com/amaldonado/cv-forge/internal/extract"
	"github.com/amaldonado/cv-forge/internal/fetch"
	"github.com/amaldonado/cv-forge/internal/language"
	"github.com/amaldonado/cv-forge/internal/observability"
	"github.com/amaldonado/cv-forge/internal/portfolio"
	"github.com/amaldonado/cv-forge/internal/ranking"
	"github.com/amaldonado/cv-forge/internal/types"
)

// maxConcurrentAdaptations bounds the per-position fan-out.
const maxConcurrentAdaptations = 4

// maxTechsPerPosition caps the technology line of each CV position.
const maxTechsPerPosition = 10

// Renderer receives finished documents. Presentation (PDF, HTML,
// plain text) lives entirely behind this interface.
type Renderer interface {
	RenderCV(ctx context.Context, doc *types.CVDocument) error
	RenderLetter(ctx context.Context, letter *types.CoverLetter) error
}

// CVPipeline orchestrates CV generation: extraction, language detection,
// adaptation, and assembly. All collaborators are injected.
type CVPipeline struct {
	provider *portfolio.Provider
	analyzer *extract.Analyzer
	detector *language.Detector
	adapter  *adapt.Adapter
	renderer Renderer
	printer  *observability.Printer
	verbose  bool
}

// NewCVPipeline constructs a CV pipeline from its collaborators.
func NewCVPipeline(
	provider *portfolio.Provider,
	analyzer *extract.Analyzer,
	detector *language.Detector,
	adapter *adapt.Adapter,
	renderer Renderer,
	printer *observability.Printer,
	verbose bool,
) *CVPipeline {
	return &CVPipeline{
		provider: provider,
		analyzer: analyzer,
		detector: detector,
		adapter:  adapter,
		renderer: renderer,
		printer:  printer,
		verbose:  verbose,
	}
}

// positionResult carries one position's adaptation outputs back from the
// fan-out, matched to its entry by slice index.
type positionResult struct {
	bullets []string
	role    string
}

// Run generates a CV for the given job description (text or URL) and
// hands the assembled document to the renderer.
func (p *CVPipeline) Run(ctx context.Context, jobDescription, roleHint string) (*types.CVDocument, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyJobDescription
	}

	runID := uuid.NewString()
	if p.verbose {
		log.Printf("[VERBOSE] CV run %s started", runID)
	}

	port, err := p.provider.Load()
	if err != nil {
		return nil, stageError("portfolio", err)
	}

	reqs, err := p.analyzer.Analyze(ctx, jobDescription, roleHint)
	if err != nil {
		return nil, stageError("extract", err)
	}
	if p.verbose && p.printer != nil {
		p.printer.PrintRequirements(reqs)
	}

	lang := p.detector.Detect(ctx, languageSample(jobDescription, reqs))
	if p.verbose {
		log.Printf("[VERBOSE] Run %s: output language %s", runID, lang)
	}

	profile := p.adapter.Profile(ctx, port, reqs, lang)
	_, keySkills := p.adapter.SelectSkillProfile(ctx, port, reqs)

	entries := professionalEntriesWithBullets(port.Jobs)
	results := make([]positionResult, len(entries))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAdaptations)
	for i, entry := range entries {
		g.Go(func() error {
			// Adaptation failures degrade to fallbacks inside the
			// adapter; a slot never fails the run.
			results[i].bullets = p.adapter.Bullets(gCtx, entry, reqs, lang)
			results[i].role = entry.Role
			if lang == types.LanguageEnglish {
				results[i].role = p.adapter.TranslateRole(gCtx, entry.Role)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stageError("adapt", err)
	}

	experience := make([]types.CVExperience, 0, len(entries))
	for i, entry := range entries {
		techs := entry.Technologies
		if len(techs) > maxTechsPerPosition {
			techs = techs[:maxTechsPerPosition]
		}
		experience = append(experience, types.CVExperience{
			Role:         results[i].role,
			Company:      entry.Company,
			City:         entry.Location,
			Period:       entry.Duration,
			Bullets:      results[i].bullets,
			Technologies: techs,
		})
	}
	sortExperienceChronological(experience)

	doc := &types.CVDocument{
		FullName: port.PersonalInfo.Name,
		Title:    port.PersonalInfo.Title,
		Contact: types.CVContact{
			Email:     port.PersonalInfo.Email,
			Phone:     port.PersonalInfo.Phone,
			Portfolio: port.PersonalInfo.Website,
			LinkedIn:  port.PersonalInfo.LinkedIn,
			GitHub:    port.PersonalInfo.GitHub,
		},
		Profile:    profile,
		KeySkills:  keySkills,
		Experience: experience,
		TechSkills: capSkillCategories(port.Skills),
		Education:  BuildEducation(port.Education, lang),
		Languages:  buildLanguages(port.Languages),
		Language:   lang,
	}

	if p.verbose && p.printer != nil {
		p.printer.PrintCVSummary(doc)
	}

	if p.renderer != nil {
		if err := p.renderer.RenderCV(ctx, doc); err != nil {
			return nil, stageError("render", err)
		}
	}
	return doc, nil
}

// languageSample picks the text to run language detection on. URL input
// carries no language signal, so the extracted summary is used instead.
func languageSample(jobDescription string, reqs *types.RequirementsRecord) string {
	if fetch.IsURL(strings.TrimSpace(jobDescription)) {
		return reqs.Summary
	}
	return jobDescription
}

// professionalEntriesWithBullets filters out academic entries and those
// without achievements to adapt.
func professionalEntriesWithBullets(jobs []types.ExperienceEntry) []*types.ExperienceEntry {
	var entries []*types.ExperienceEntry
	for _, entry := range ranking.ProfessionalEntries(jobs) {
		if len(entry.Achievements) == 0 {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func sortExperienceChronological(experience []types.CVExperience) {
	// Most recent first; stable so same-year positions keep portfolio order.
	sort.SliceStable(experience, func(i, j int) bool {
		return ranking.StartYear(experience[i].Period) > ranking.StartYear(experience[j].Period)
	})
}

const maxSkillsPerCategory = 15

func capSkillCategories(categories []types.SkillCategory) []types.SkillCategory {
	capped := make([]types.SkillCategory, 0, len(categories))
	for _, category := range categories {
		items := category.Items
		if len(items) > maxSkillsPerCategory {
			items = items[:maxSkillsPerCategory]
		}
		capped = append(capped, types.SkillCategory{Category: category.Category, Items: items})
	}
	return capped
}

func buildLanguages(languages []types.LanguageInfo) []types.CVLanguage {
	built := make([]types.CVLanguage, 0, len(languages))
	for _, lang := range languages {
		built = append(built, types.CVLanguage{Language: lang.Name, Level: lang.Level})
	}
	return built
}
