package pipeline

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/amaldonado/cv-forge/internal/extract"
	"github.com/amaldonado/cv-forge/internal/keywords"
	"github.com/amaldonado/cv-forge/internal/language"
	"github.com/amaldonado/cv-forge/internal/letter"
	"github.com/amaldonado/cv-forge/internal/observability"
	"github.com/amaldonado/cv-forge/internal/portfolio"
	"github.com/amaldonado/cv-forge/internal/ranking"
	"github.com/amaldonado/cv-forge/internal/types"
)

// LetterPipeline orchestrates cover-letter generation.
type LetterPipeline struct {
	provider  *portfolio.Provider
	analyzer  *extract.Analyzer
	detector  *language.Detector
	generator *letter.Generator
	renderer  Renderer
	printer   *observability.Printer
	verbose   bool
}

// NewLetterPipeline constructs a cover-letter pipeline from its collaborators.
func NewLetterPipeline(
	provider *portfolio.Provider,
	analyzer *extract.Analyzer,
	detector *language.Detector,
	generator *letter.Generator,
	renderer Renderer,
	printer *observability.Printer,
	verbose bool,
) *LetterPipeline {
	return &LetterPipeline{
		provider:  provider,
		analyzer:  analyzer,
		detector:  detector,
		generator: generator,
		renderer:  renderer,
		printer:   printer,
		verbose:   verbose,
	}
}

// Run generates a cover letter for the given job description (text or
// URL). company is optional free text identifying the employer.
func (p *LetterPipeline) Run(ctx context.Context, jobDescription, company string) (*types.CoverLetter, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyJobDescription
	}

	runID := uuid.NewString()
	if p.verbose {
		log.Printf("[VERBOSE] Letter run %s started", runID)
	}

	port, err := p.provider.Load()
	if err != nil {
		return nil, stageError("portfolio", err)
	}

	reqs, err := p.analyzer.Analyze(ctx, jobDescription, "")
	if err != nil {
		return nil, stageError("extract", err)
	}
	if p.verbose && p.printer != nil {
		p.printer.PrintRequirements(reqs)
	}

	lang := p.detector.Detect(ctx, languageSample(jobDescription, reqs))

	critical := keywords.Critical(reqs)
	if p.verbose && p.printer != nil {
		p.printer.PrintKeywords(critical)
	}

	top := ranking.TopForLetter(port, reqs)
	if p.verbose && p.printer != nil {
		p.printer.PrintRanking(top)
	}

	companyInfo := ""
	if company != "" {
		companyInfo = "Company: " + company
	}

	paragraphs, err := p.generator.Generate(ctx, port, reqs, critical, top, companyInfo, lang)
	if err != nil {
		return nil, stageError("letter", err)
	}

	coverLetter := &types.CoverLetter{
		FullName:   port.PersonalInfo.Name,
		Role:       reqs.Role,
		Company:    company,
		Paragraphs: paragraphs,
		Language:   lang,
	}

	if p.verbose && p.printer != nil {
		p.printer.PrintLetterSummary(coverLetter)
	}

	if p.renderer != nil {
		if err := p.renderer.RenderLetter(ctx, coverLetter); err != nil {
			return nil, stageError("render", err)
		}
	}
	return coverLetter, nil
}
