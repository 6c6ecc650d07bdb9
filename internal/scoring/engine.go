// Package scoring computes the profile completeness and fit-score report.
// Everything here is a pure function of the profile and document set handed
// in by the caller; the package performs no I/O and holds no state.
package scoring

import (
	"errors"
	"math"
	"strings"

	"pathfinder-backend/internal/domain"
)

// ErrProfileMissing is returned when no profile row exists yet. Callers
// should redirect the user to profile creation instead of rendering scores.
var ErrProfileMissing = errors.New("profile missing")

// Aggregate weights. These are versioned constants of the formula, not
// tunable configuration.
const (
	weightCompleteness = 0.5
	weightExperience   = 0.3
	weightDocuments    = 0.2

	// Document strength saturates at this many uploads.
	documentSaturation = 3
	// Experience saturates at this many years.
	experienceSaturationYears = 5.0
)

// RadarLabels are the five radar-chart dimensions, in render order.
var RadarLabels = []string{"Education", "GPA", "Coding", "Communication", "Experience"}

// requiredSkills backs the legacy career-goal overlap fraction.
var requiredSkills = []string{"Data Analysis", "Python", "Communication"}

// Compute builds the full score report for a profile and its documents.
// The profile may be nil, which yields ErrProfileMissing.
func Compute(p *domain.Profile, docs []domain.Document) (*domain.ScoreReport, error) {
	if p == nil {
		return nil, ErrProfileMissing
	}

	completeness := Completeness(p)
	experience := ExperienceFraction(p.WorkingExperience)
	docStrength := DocumentStrength(len(docs))

	return &domain.ScoreReport{
		Completeness:     completeness,
		Experience:       experience,
		DocumentStrength: docStrength,
		SkillMatch:       SkillMatchFraction(p.CareerGoal),
		FitScore:         FitScore(completeness, experience, docStrength),
		RadarLabels:      RadarLabels,
		RadarValues:      RadarValues(p),
	}, nil
}

// Completeness returns the filled fraction of the eight tracked profile
// fields. A field counts as present when non-empty (dates: non-nil).
func Completeness(p *domain.Profile) float64 {
	if p == nil {
		return 0
	}
	tracked := []bool{
		p.FullName != "",
		p.BirthDate != nil,
		p.Education != domain.EducationNone,
		p.School != "",
		p.GraduationDate != nil,
		p.CareerGoal != "",
		p.SelfDescription != "",
		p.InternshipExperience != "",
	}
	filled := 0
	for _, present := range tracked {
		if present {
			filled++
		}
	}
	return float64(filled) / float64(len(tracked))
}

// DocumentStrength maps an upload count onto [0,1], saturating at three
// documents.
func DocumentStrength(count int) float64 {
	if count < 0 {
		count = 0
	}
	return math.Min(float64(count)/documentSaturation, 1.0)
}

// ExperienceFraction maps working years onto [0,1], saturating at five
// years. This is the canonical skill/experience input to the fit score.
func ExperienceFraction(years int) float64 {
	if years < 0 {
		years = 0
	}
	return math.Min(float64(years)/experienceSaturationYears, 1.0)
}

// SkillMatchFraction is the legacy overlap between the fixed required-skill
// set and the comma-separated tags in the career goal. It is exposed for
// compatibility only and does not feed the fit score.
func SkillMatchFraction(careerGoal string) float64 {
	if careerGoal == "" {
		return 0
	}
	tags := make(map[string]bool)
	for _, tag := range strings.Split(careerGoal, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags[tag] = true
		}
	}
	matched := 0
	for _, skill := range requiredSkills {
		if tags[skill] {
			matched++
		}
	}
	return float64(matched) / float64(len(requiredSkills))
}

// FitScore blends the three fractions into a 0-100 integer. Rounding is
// math.Round, i.e. halves away from zero.
func FitScore(completeness, experience, docStrength float64) int {
	weighted := weightCompleteness*completeness +
		weightExperience*experience +
		weightDocuments*docStrength
	return int(math.Round(weighted * 100))
}

// RadarValues returns the five radar dimensions for a profile, matching
// RadarLabels order: education rank, GPA rank, coding-flag count,
// communication rating, raw working years.
func RadarValues(p *domain.Profile) []int {
	return []int{
		p.Education.Rank(),
		p.GPA.Rank(),
		p.CodingSkillCount(),
		p.CommunicationSkill,
		p.WorkingExperience,
	}
}
