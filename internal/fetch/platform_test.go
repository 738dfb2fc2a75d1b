package fetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPlatform_KnownBoards(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://workday.com/jobs", PlatformWorkday},
		{"https://www.linkedin.com/jobs/view/3789012345", PlatformLinkedIn},
		{"https://www.indeed.com/viewjob?jk=abc123", PlatformIndeed},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestDetectPlatform_Unknown(t *testing.T) {
	assert.Equal(t, PlatformUnknown, DetectPlatform("https://example.com/careers/42"))
	assert.Equal(t, PlatformUnknown, DetectPlatform("://not a url"))
}

func TestPlatformContentSelectors_SpecificFirst(t *testing.T) {
	tests := []struct {
		platform Platform
		first    string
	}{
		{PlatformGreenhouse, ".job__description.body"},
		{PlatformLever, ".posting-page"},
		{PlatformWorkday, "[data-automation-id='jobDescription']"},
		{PlatformLinkedIn, ".description__text"},
		{PlatformIndeed, "#jobDescriptionText"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			selectors := PlatformContentSelectors(tt.platform)
			require.NotEmpty(t, selectors)
			assert.Equal(t, tt.first, selectors[0],
				"the most specific selector is tried first")
		})
	}
}

func TestPlatformContentSelectors_UnknownFallsBack(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformUnknown)
	assert.Contains(t, selectors, ".job-description")
	assert.Contains(t, selectors, "main")
}

func TestPlatformNoiseSelectors_CommonAlwaysPresent(t *testing.T) {
	for _, platform := range []Platform{
		PlatformGreenhouse, PlatformLever, PlatformWorkday,
		PlatformLinkedIn, PlatformIndeed, PlatformUnknown,
	} {
		selectors := PlatformNoiseSelectors(platform)
		assert.Contains(t, selectors, "form", "platform %s", platform)
		assert.Contains(t, selectors, ".cookie-banner", "platform %s", platform)
		assert.Contains(t, selectors, ".eeo-statement", "platform %s", platform)
	}
}

func TestPlatformNoiseSelectors_PlatformSpecific(t *testing.T) {
	assert.Contains(t, PlatformNoiseSelectors(PlatformGreenhouse), ".voluntary-self-id")
	assert.Contains(t, PlatformNoiseSelectors(PlatformLever), ".posting-apply")
	assert.Contains(t, PlatformNoiseSelectors(PlatformWorkday), "[data-automation-id='applyButton']")
	assert.Contains(t, PlatformNoiseSelectors(PlatformLinkedIn), ".similar-jobs")
	assert.Contains(t, PlatformNoiseSelectors(PlatformIndeed), "#applyButtonLinkContainer")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""), "empty extraction means an unrendered shell")
	assert.True(t, ShouldUseBrowser("   \n\t  "))
	assert.True(t, ShouldUseBrowser("Loading..."))

	posting := strings.Repeat("Senior engineer with Go and PostgreSQL experience. ", 20)
	assert.False(t, ShouldUseBrowser(posting))
}
