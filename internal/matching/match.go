// Package matching compares resume and job keyword sets, producing exact,
// partial and inferred matches plus the missing-from-candidate set.
package matching

import "strings"

// Result holds the outcome of matching a resume keyword set against a job
// keyword set. Matched preserves job-keyword order and is the union of
// Exact, Partial and Inferred; Missing is the job set minus Matched.
type Result struct {
	Matched  []string
	Exact    []string
	Partial  []string
	Inferred []string
	Missing  []string
}

// seniorityMarkers flag keywords that express a job level.
var seniorityMarkers = []string{"junior", "senior", "lead"}

// earlyCareerMarkers are resume terms that let a Junior-class requirement be
// inferred when the resume states no explicit level.
var earlyCareerMarkers = []string{
	"student", "graduate", "university", "college", "school",
	"bachelor", "internship", "intern",
}

// Match compares the two keyword sets. Seniority tokens are resolved first;
// remaining job keywords are tested for case-insensitive equality and then
// bidirectional substring containment.
func Match(resumeKeywords, jobKeywords []string) Result {
	res := Result{
		Matched:  make([]string, 0, len(jobKeywords)),
		Missing:  make([]string, 0),
		Exact:    make([]string, 0),
		Partial:  make([]string, 0),
		Inferred: make([]string, 0),
	}
	if len(jobKeywords) == 0 {
		return res
	}

	resumeLower := make([]string, len(resumeKeywords))
	resumeSet := make(map[string]bool, len(resumeKeywords))
	for i, kw := range resumeKeywords {
		resumeLower[i] = strings.ToLower(kw)
		resumeSet[resumeLower[i]] = true
	}

	resolved := make(map[string]bool)

	// Step 1: seniority handling.
	jobLevels := seniorityKeywords(jobKeywords)
	if len(jobLevels) > 0 {
		resumeHasLevel := len(seniorityKeywords(resumeKeywords)) > 0
		switch {
		case resumeHasLevel:
			for _, level := range jobLevels {
				res.Exact = append(res.Exact, level)
				resolved[level] = true
			}
		case hasJuniorLevel(jobLevels) && hasEarlyCareerMarker(resumeLower):
			// No explicit level on the resume, but education evidence lets
			// Junior-class requirements count as an inferred partial match.
			for _, level := range jobLevels {
				if strings.Contains(strings.ToLower(level), "junior") {
					res.Partial = append(res.Partial, level)
					res.Inferred = append(res.Inferred, level)
					resolved[level] = true
				}
			}
		}
	}

	// Step 2: exact then bidirectional substring matching for everything the
	// seniority step did not already resolve.
	for _, jobKw := range jobKeywords {
		if resolved[jobKw] {
			res.Matched = append(res.Matched, jobKw)
			continue
		}
		jobLower := strings.ToLower(jobKw)

		if resumeSet[jobLower] {
			res.Matched = append(res.Matched, jobKw)
			res.Exact = append(res.Exact, jobKw)
			continue
		}

		matched := false
		for _, resumeKw := range resumeLower {
			if resumeKw == "" {
				continue
			}
			if strings.Contains(resumeKw, jobLower) || strings.Contains(jobLower, resumeKw) {
				matched = true
				break
			}
		}
		if matched {
			res.Matched = append(res.Matched, jobKw)
			res.Partial = append(res.Partial, jobKw)
			continue
		}

		res.Missing = append(res.Missing, jobKw)
	}

	return res
}

// seniorityKeywords returns the job-level keywords present in a keyword set,
// preserving order.
func seniorityKeywords(keywords []string) []string {
	levels := make([]string, 0)
	for _, kw := range keywords {
		lower := strings.ToLower(kw)
		for _, marker := range seniorityMarkers {
			if strings.Contains(lower, marker) {
				levels = append(levels, kw)
				break
			}
		}
	}
	return levels
}

func hasJuniorLevel(levels []string) bool {
	for _, level := range levels {
		if strings.Contains(strings.ToLower(level), "junior") {
			return true
		}
	}
	return false
}

func hasEarlyCareerMarker(resumeLower []string) bool {
	joined := strings.Join(resumeLower, " ")
	for _, marker := range earlyCareerMarkers {
		if strings.Contains(joined, marker) {
			return true
		}
	}
	return false
}
