// Package adapt rewrites portfolio content for a specific posting using
// a model, then verifies the output never claims anything the portfolio
// cannot back. Every operation has a deterministic fallback, so a dead
// model degrades output quality but never fails a run.
package adapt

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/amaldonado/cv-forge/internal/keywords"
	"github.com/amaldonado/cv-forge/internal/llm"
	"github.com/amaldonado/cv-forge/internal/prompts"
	"github.com/amaldonado/cv-forge/internal/types"
)

// Generation parameters per operation. Lower temperatures for tasks
// where determinism matters more than fluency.
const (
	profileTemperature  = 0.3
	profileMaxTokens    = 200
	bulletsTemperature  = 0.2
	bulletsMaxTokens    = 400
	translateTemp       = 0.2
	translateMaxTokens  = 30
	classifyTemperature = 0.0
	classifyMaxTokens   = 20
)

// MaxProfileLines caps the adapted profile.
const MaxProfileLines = 4

// maxTranslatedRoleLength rejects obviously broken translations.
const maxTranslatedRoleLength = 100

// Adapter rewrites portfolio content against job requirements.
type Adapter struct {
	client  llm.Client
	cache   *Cache
	verbose bool
}

// NewAdapter creates an adapter. A nil cache gets a default-sized one.
func NewAdapter(client llm.Client, cache *Cache, verbose bool) (*Adapter, error) {
	if cache == nil {
		var err error
		cache, err = NewCache(DefaultCacheSize)
		if err != nil {
			return nil, err
		}
	}
	return &Adapter{client: client, cache: cache, verbose: verbose}, nil
}

// RoleContext builds the shared cache-key context: posting role,
// document language, and the leading keywords.
func RoleContext(reqs *types.RequirementsRecord, lang types.Language) string {
	kws := keywords.ForJob(reqs)
	if len(kws) > 3 {
		kws = kws[:3]
	}
	role := reqs.Role
	if role == "" {
		role = "N/A"
	}
	return fmt.Sprintf("%s|%s|%s", role, lang, strings.Join(kws, ","))
}

// Profile generates a 3-4 line profile adapted to the posting. On any
// failure the portfolio's short summary is returned.
func (a *Adapter) Profile(ctx context.Context, portfolio *types.Portfolio, reqs *types.RequirementsRecord, lang types.Language) string {
	fallback := portfolio.ProfessionalSummary.Short

	key := Key("profile:"+portfolio.ProfessionalSummary.Detailed, RoleContext(reqs, lang))
	if cached, ok := a.cache.GetString(key); ok {
		return cached
	}

	template, err := prompts.Get("adapt.json", profileKey(lang))
	if err != nil {
		return fallback
	}
	prompt := prompts.Format(template, map[string]string{
		"Keywords":        strings.Join(keywords.ForJob(reqs), ", "),
		"JobDescription":  jobSummaryBlock(reqs),
		"OriginalProfile": portfolio.ProfessionalSummary.Detailed,
	})

	response, err := a.client.Generate(ctx, llm.Request{
		Prompt:      prompt,
		System:      prompts.MustGet("adapt.json", systemKey("profile", lang)),
		Temperature: profileTemperature,
		MaxTokens:   profileMaxTokens,
	})
	if err != nil {
		if a.verbose {
			log.Printf("[VERBOSE] Profile adaptation failed, using short summary: %v", err)
		}
		a.cache.PutString(key, fallback)
		return fallback
	}

	profile := CleanProfileMarkdown(CleanResponse(response, false))
	profile = limitLines(profile, MaxProfileLines)
	if profile == "" {
		profile = fallback
	}

	a.cache.PutString(key, profile)
	return profile
}

// Bullets adapts one entry's achievements to the posting, enforcing the
// entry's technology allow-list on the result. Falls back to the
// cleaned original achievements.
func (a *Adapter) Bullets(ctx context.Context, entry *types.ExperienceEntry, reqs *types.RequirementsRecord, lang types.Language) []string {
	originals := CleanBullets(entry.Achievements)
	originals = capBullets(originals)
	if len(originals) == 0 {
		return nil
	}

	key := Key(fmt.Sprintf("adaptation:%s:%s", entry.Company, entry.Role), RoleContext(reqs, lang))
	if cached, ok := a.cache.GetBullets(key); ok {
		return cached
	}

	template, err := prompts.Get("adapt.json", bulletsKey(lang))
	if err != nil {
		return originals
	}

	allowed := strings.Join(entry.AllowList(), ", ")
	if allowed == "" {
		allowed = "None specified"
	}
	prompt := prompts.Format(template, map[string]string{
		"JobSummary":          jobSummaryBlock(reqs),
		"JobContext":          entryContextBlock(entry),
		"OriginalBullets":     "- " + strings.Join(originals, "\n- "),
		"AllowedTechnologies": allowed,
	})

	response, err := a.client.Generate(ctx, llm.Request{
		Prompt:      prompt,
		System:      prompts.MustGet("adapt.json", systemKey("bullets", lang)),
		Temperature: bulletsTemperature,
		MaxTokens:   bulletsMaxTokens,
	})
	if err != nil {
		if a.verbose {
			log.Printf("[VERBOSE] Bullet adaptation failed for %s, using originals: %v", entry.Company, err)
		}
		a.cache.PutBullets(key, originals)
		return originals
	}

	bullets := CleanBullets(strings.Split(CleanResponse(response, false), "\n"))
	validated := ValidateBullets(bullets, entry.AllowList(), originals)
	if len(validated) == 0 {
		validated = originals
	}

	a.cache.PutBullets(key, validated)
	return validated
}

// TranslateRole translates a Spanish role title to English, cached.
// Returns the input unchanged on any failure.
func (a *Adapter) TranslateRole(ctx context.Context, role string) string {
	if role == "" {
		return role
	}

	key := Key("role_translation:"+role, "en")
	if cached, ok := a.cache.GetString(key); ok {
		return cached
	}

	prompt := prompts.Format(prompts.MustGet("adapt.json", "translate-role"), map[string]string{"Role": role})
	response, err := a.client.Generate(ctx, llm.Request{
		Prompt:      prompt,
		System:      prompts.MustGet("adapt.json", "translate-role-system"),
		Temperature: translateTemp,
		MaxTokens:   translateMaxTokens,
	})
	if err != nil {
		return role
	}

	translated := CleanResponse(response, true)
	translated = strings.Trim(translated, `"'`)
	if translated == "" || len(translated) > maxTranslatedRoleLength {
		translated = role
	}

	a.cache.PutString(key, translated)
	return translated
}

// SelectSkillProfile classifies the posting into one of the portfolio's
// pre-curated skill profiles and projects that profile into Key Skills
// lines. The projection itself never touches the model, so skills cannot
// be invented. When classification fails or the profile is missing, the
// flat portfolio skills are filtered and prioritized instead.
func (a *Adapter) SelectSkillProfile(ctx context.Context, portfolio *types.Portfolio, reqs *types.RequirementsRecord) (ProfileCategory, []string) {
	category := a.classify(ctx, portfolio.SkillProfiles, reqs)

	if profile, ok := portfolio.SkillProfiles[string(category)]; ok && len(profile) > 0 {
		return category, FormatSkillProfile(profile)
	}

	var flat []string
	for _, group := range portfolio.Skills {
		flat = append(flat, group.Items...)
	}
	return category, PrioritizeSkills(flat, reqs)
}

func (a *Adapter) classify(ctx context.Context, profiles map[string][]types.SkillCategory, reqs *types.RequirementsRecord) ProfileCategory {
	techs := reqs.Technologies
	if len(techs) > 10 {
		techs = techs[:10]
	}
	prompt := prompts.Format(prompts.MustGet("adapt.json", "classify-profile"), map[string]string{
		"Role":         orNA(reqs.Role),
		"Technologies": strings.Join(techs, ", "),
		"Summary":      reqs.Summary,
	})

	response, err := a.client.Generate(ctx, llm.Request{
		Prompt:      prompt,
		System:      prompts.MustGet("adapt.json", "classify-profile-system"),
		Temperature: classifyTemperature,
		MaxTokens:   classifyMaxTokens,
	})
	if err != nil {
		if a.verbose {
			log.Printf("[VERBOSE] Skill profile classification failed, defaulting: %v", err)
		}
		return defaultProfileCategory
	}

	category, ok := ParseProfileCategory(response, profiles)
	if !ok {
		return defaultProfileCategory
	}
	return category
}

func profileKey(lang types.Language) string {
	if lang == types.LanguageEnglish {
		return "profile-en"
	}
	return "profile-es"
}

func bulletsKey(lang types.Language) string {
	if lang == types.LanguageEnglish {
		return "bullets-en"
	}
	return "bullets-es"
}

func systemKey(prefix string, lang types.Language) string {
	if lang == types.LanguageEnglish {
		return prefix + "-system-en"
	}
	return prefix + "-system-es"
}

// jobSummaryBlock renders requirements as the compact block the prompts
// embed.
func jobSummaryBlock(reqs *types.RequirementsRecord) string {
	return fmt.Sprintf("Role: %s\nSummary: %s\nTechnologies: %s\nRequirements: %s\nIndustry: %s",
		orNA(reqs.Role),
		reqs.Summary,
		strings.Join(capList(reqs.Technologies, 10), ", "),
		orNA(strings.Join(capList(reqs.Requirements, 5), ", ")),
		orNA(strings.Join(capList(reqs.IndustryTags, 5), ", ")),
	)
}

func entryContextBlock(entry *types.ExperienceEntry) string {
	description := entry.Description
	if len(description) > 200 {
		description = description[:200]
	}
	return fmt.Sprintf("Company: %s\nRole: %s\nDuration: %s\nLocation: %s\nDescription: %s",
		entry.Company, entry.Role, entry.Duration, entry.Location, orNA(description))
}

func limitLines(text string, max int) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == max {
			break
		}
	}
	return strings.Join(kept, "\n")
}

func capList(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
