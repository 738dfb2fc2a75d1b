// Package fetch - platform.go maps job posting URLs to the CSS selectors
// their job board renders the description with.
package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies the job board hosting a posting URL.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS.
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS.
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS.
	PlatformWorkday Platform = "workday"
	// PlatformLinkedIn is a LinkedIn job posting page.
	PlatformLinkedIn Platform = "linkedin"
	// PlatformIndeed is an Indeed job posting page.
	PlatformIndeed Platform = "indeed"
	// PlatformUnknown is an unrecognized job board.
	PlatformUnknown Platform = "unknown"
)

// platformHosts maps host fragments to their platform. Matching by fragment
// resolves vanity subdomains (boards.greenhouse.io, jobs.lever.co,
// company.wd5.myworkdayjobs.com) the same as the bare domain.
var platformHosts = []struct {
	fragment string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"linkedin.com", PlatformLinkedIn},
	{"indeed.com", PlatformIndeed},
}

// DetectPlatform identifies the job board from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, ph := range platformHosts {
		if strings.Contains(host, ph.fragment) {
			return ph.platform
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns description selectors for the platform,
// most specific first. Unknown platforms fall back to the generic job
// posting selectors.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".posting-description",
			".section-wrapper.page-full-width",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".gwt-HTML",
			".job-description",
		}
	case PlatformLinkedIn:
		return []string{
			".description__text",
			".show-more-less-html__markup",
			".jobs-description__content",
		}
	case PlatformIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-JobComponent-description",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns selectors stripped before text extraction.
// Application forms, EEO disclosures and consent banners never belong in
// the text the scorer sees; leaving them in inflates soft-skill and
// keyword hits with boilerplate.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		"#application-form",
		".application-form",
		".apply-button-container",

		".voluntary-disclosure",
		".eeo-statement",
		".self-identification",

		".social-share",
		".share-buttons",

		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			"#usa_self_id_section",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".posting-apply",
			".lever-application-form",
		)
	case PlatformWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
			".application-section",
		)
	case PlatformLinkedIn:
		return append(common,
			".apply-button",
			".top-card-layout__cta-container",
			".similar-jobs",
		)
	case PlatformIndeed:
		return append(common,
			"#applyButtonLinkContainer",
			".jobsearch-CompanyReview",
			".icl-Callout",
		)
	default:
		return common
	}
}
