// Package scoring computes the five aspect scores and the final weighted
// match score, including the achievement bonus and the integrity-cap policy.
package scoring

import (
	"fmt"
	"math"
)

// Aspect names accepted in a weight configuration.
const (
	AspectSkills       = "skills"
	AspectExperience   = "experience"
	AspectAchievements = "achievements"
	AspectEducation    = "education"
	AspectCulturalFit  = "culturalFit"
)

// AspectNames fixes the iteration order over aspects.
var AspectNames = []string{
	AspectSkills,
	AspectExperience,
	AspectAchievements,
	AspectEducation,
	AspectCulturalFit,
}

// Weights maps aspect name to its non-negative weight. After Resolve the
// five weights sum to exactly 1.0.
type Weights map[string]float64

// ConfigurationError reports an invalid weight configuration. It is the only
// error the engine surfaces to callers as a hard failure.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// StandardWeights is the request-path default profile.
func StandardWeights() Weights {
	return Weights{
		AspectSkills:       0.40,
		AspectExperience:   0.30,
		AspectAchievements: 0.20,
		AspectEducation:    0.05,
		AspectCulturalFit:  0.05,
	}
}

// LegacyWeights is the historical scoring-service profile. Both profiles are
// equally valid; the surrounding system used them interchangeably, so both
// remain reproducible by name.
func LegacyWeights() Weights {
	return Weights{
		AspectSkills:       0.40,
		AspectExperience:   0.30,
		AspectAchievements: 0.15,
		AspectEducation:    0.10,
		AspectCulturalFit:  0.05,
	}
}

// ProfileByName returns a named weight profile, defaulting to standard.
func ProfileByName(name string) (Weights, error) {
	switch name {
	case "", "standard":
		return StandardWeights(), nil
	case "legacy":
		return LegacyWeights(), nil
	default:
		return nil, &ConfigurationError{Field: "profile", Message: fmt.Sprintf("unknown weight profile %q", name)}
	}
}

// Resolve merges caller-supplied overrides onto a base profile and
// normalizes the result so the five weights sum to exactly 1.0.
// Unknown aspect names, negative weights and an all-zero configuration are
// ConfigurationErrors.
func Resolve(overrides map[string]float64, base Weights) (Weights, error) {
	resolved := make(Weights, len(AspectNames))
	for _, name := range AspectNames {
		resolved[name] = base[name]
	}

	for name, weight := range overrides {
		if !isAspect(name) {
			return nil, &ConfigurationError{Field: "weights", Message: fmt.Sprintf("unknown aspect %q", name)}
		}
		if weight < 0 {
			return nil, &ConfigurationError{Field: "weights." + name, Message: "weight must be non-negative"}
		}
		resolved[name] = weight
	}

	sum := 0.0
	for _, name := range AspectNames {
		sum += resolved[name]
	}
	if sum == 0 {
		return nil, &ConfigurationError{Field: "weights", Message: "weights sum to zero"}
	}
	if math.Abs(sum-1.0) > 1e-9 {
		for _, name := range AspectNames {
			resolved[name] /= sum
		}
	}

	return resolved, nil
}

func isAspect(name string) bool {
	for _, aspect := range AspectNames {
		if aspect == name {
			return true
		}
	}
	return false
}
