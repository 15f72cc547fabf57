// Package fetch - platform.go provides job board detection and board-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board.
type Platform string

const (
	// PlatformLinkedIn is the LinkedIn jobs board
	PlatformLinkedIn Platform = "linkedin"
	// PlatformInfoJobs is the InfoJobs board
	PlatformInfoJobs Platform = "infojobs"
	// PlatformIndeed is the Indeed board
	PlatformIndeed Platform = "indeed"
	// PlatformUnknown is an unrecognized board
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "linkedin.com") {
		return PlatformLinkedIn
	}

	if strings.Contains(host, "infojobs.net") {
		return PlatformInfoJobs
	}

	if strings.Contains(host, "indeed.com") || strings.Contains(host, "indeed.es") {
		return PlatformIndeed
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific board.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLinkedIn:
		return []string{
			".description__text",
			".show-more-less-html__markup",
			".jobs-description__content",
			"[class*='description']",
			"main",
		}
	case PlatformInfoJobs:
		return []string{
			".panel-canvas",
			"#prefijoDescripcion1",
			".job-description",
			"[id*='descripcion']",
			"main",
		}
	case PlatformIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-jobDescriptionText",
			".jobsearch-JobComponent-description",
			"main",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific board.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		// Application forms
		"form",
		".apply-button-container",
		"[data-testid='application-form']",

		// Related / similar job widgets
		".similar-jobs",
		".related-jobs",
		"[class*='similar-jobs']",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformLinkedIn:
		return append(common,
			".top-card-layout__cta-container",
			".sign-up-modal",
			".join-form",
			"[class*='see-more-jobs']",
		)
	case PlatformInfoJobs:
		return append(common,
			".inscription-box",
			".panel-inscription",
			"[id*='inscripcion']",
		)
	case PlatformIndeed:
		return append(common,
			"#applyButtonLinkContainer",
			".jobsearch-OtherJobs",
			".icl-Callout",
		)
	default:
		return common
	}
}
