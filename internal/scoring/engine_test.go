package scoring_test

import (
	"testing"
	"time"

	"pathfinder-backend/internal/domain"
	"pathfinder-backend/internal/scoring"

	"github.com/stretchr/testify/assert"
)

func fullProfile() *domain.Profile {
	birth := time.Date(2000, 3, 14, 0, 0, 0, 0, time.UTC)
	grad := time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Profile{
		UserID:               "user1",
		FullName:             "Alex Chen",
		BirthDate:            &birth,
		Education:            domain.EducationBachelor,
		GraduationDate:       &grad,
		School:               "UNSW",
		GPA:                  domain.GPAHD,
		CareerGoal:           "Data Analysis, Python",
		SelfDescription:      "Backend developer",
		InternshipExperience: "Two summer internships",
		CodingSQL:            true,
		CodingPython:         true,
		CommunicationSkill:   4,
		WorkingExperience:    5,
	}
}

func docs(n int) []domain.Document {
	out := make([]domain.Document, n)
	for i := range out {
		out[i] = domain.Document{ID: int64(i + 1), UserID: "user1"}
	}
	return out
}

func TestComputeMissingProfile(t *testing.T) {
	report, err := scoring.Compute(nil, nil)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, scoring.ErrProfileMissing)
}

func TestCompleteness(t *testing.T) {
	t.Run("all eight fields filled", func(t *testing.T) {
		assert.Equal(t, 1.0, scoring.Completeness(fullProfile()))
	})

	t.Run("empty profile row", func(t *testing.T) {
		assert.Equal(t, 0.0, scoring.Completeness(&domain.Profile{UserID: "user1"}))
	})

	t.Run("four of eight fields", func(t *testing.T) {
		grad := time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC)
		p := &domain.Profile{
			UserID:         "user1",
			FullName:       "Alex Chen",
			Education:      domain.EducationMaster,
			GraduationDate: &grad,
			School:         "UNSW",
		}
		assert.Equal(t, 0.5, scoring.Completeness(p))
	})

	t.Run("non-tracked fields do not count", func(t *testing.T) {
		// Age, GPA, expected company, coding flags, communication and
		// experience are scored elsewhere.
		p := &domain.Profile{
			UserID:             "user1",
			Age:                24,
			GPA:                domain.GPAHD,
			ExpectedCompany:    "Atlassian",
			CodingPython:       true,
			CommunicationSkill: 5,
			WorkingExperience:  10,
		}
		assert.Equal(t, 0.0, scoring.Completeness(p))
	})
}

func TestDocumentStrength(t *testing.T) {
	assert.Equal(t, 0.0, scoring.DocumentStrength(0))
	assert.InDelta(t, 1.0/3.0, scoring.DocumentStrength(1), 1e-9)
	assert.InDelta(t, 2.0/3.0, scoring.DocumentStrength(2), 1e-9)
	assert.Equal(t, 1.0, scoring.DocumentStrength(3))

	t.Run("saturates above three", func(t *testing.T) {
		assert.Equal(t, 1.0, scoring.DocumentStrength(4))
		assert.Equal(t, 1.0, scoring.DocumentStrength(100))
	})

	t.Run("negative counts clamp to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, scoring.DocumentStrength(-1))
	})
}

func TestExperienceFraction(t *testing.T) {
	assert.Equal(t, 0.0, scoring.ExperienceFraction(0))
	assert.InDelta(t, 0.4, scoring.ExperienceFraction(2), 1e-9)
	assert.Equal(t, 1.0, scoring.ExperienceFraction(5))

	t.Run("saturates above five years", func(t *testing.T) {
		assert.Equal(t, 1.0, scoring.ExperienceFraction(6))
		assert.Equal(t, 1.0, scoring.ExperienceFraction(40))
	})

	t.Run("negative years clamp to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, scoring.ExperienceFraction(-3))
	})
}

func TestFitScore(t *testing.T) {
	t.Run("complete profile scores 100", func(t *testing.T) {
		assert.Equal(t, 100, scoring.FitScore(1.0, 1.0, 1.0))
	})

	t.Run("empty profile scores 0", func(t *testing.T) {
		assert.Equal(t, 0, scoring.FitScore(0, 0, 0))
	})

	t.Run("half completeness, two years, one document scores 44", func(t *testing.T) {
		// 0.5*0.5 + 0.3*0.4 + 0.2*(1/3) = 0.4367 -> 44
		assert.Equal(t, 44, scoring.FitScore(0.5, 0.4, 1.0/3.0))
	})

	t.Run("stays within 0..100", func(t *testing.T) {
		for _, c := range []float64{0, 0.25, 0.5, 0.875, 1} {
			for _, e := range []float64{0, 0.2, 0.6, 1} {
				for _, d := range []float64{0, 1.0 / 3.0, 2.0 / 3.0, 1} {
					score := scoring.FitScore(c, e, d)
					assert.GreaterOrEqual(t, score, 0)
					assert.LessOrEqual(t, score, 100)
				}
			}
		}
	})
}

func TestSkillMatchFraction(t *testing.T) {
	t.Run("empty goal", func(t *testing.T) {
		assert.Equal(t, 0.0, scoring.SkillMatchFraction(""))
	})

	t.Run("full overlap", func(t *testing.T) {
		assert.Equal(t, 1.0, scoring.SkillMatchFraction("Data Analysis, Python, Communication"))
	})

	t.Run("partial overlap ignores unknown tags", func(t *testing.T) {
		assert.InDelta(t, 1.0/3.0, scoring.SkillMatchFraction("Python, Kubernetes"), 1e-9)
	})

	t.Run("whitespace around tags is trimmed", func(t *testing.T) {
		assert.InDelta(t, 2.0/3.0, scoring.SkillMatchFraction("  Python ,Communication  "), 1e-9)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		assert.Equal(t, 0.0, scoring.SkillMatchFraction("python, communication"))
	})
}

func TestRadarValues(t *testing.T) {
	t.Run("labels and values stay in lockstep", func(t *testing.T) {
		values := scoring.RadarValues(fullProfile())
		assert.Len(t, values, len(scoring.RadarLabels))
	})

	t.Run("full profile", func(t *testing.T) {
		// Bachelor=2, HD=5, two coding flags, communication 4, five years.
		assert.Equal(t, []int{2, 5, 2, 4, 5}, scoring.RadarValues(fullProfile()))
	})

	t.Run("empty profile", func(t *testing.T) {
		assert.Equal(t, []int{0, 0, 0, 0, 0}, scoring.RadarValues(&domain.Profile{UserID: "user1"}))
	})

	t.Run("education ranks", func(t *testing.T) {
		cases := map[domain.EducationLevel]int{
			domain.EducationNone:     0,
			domain.EducationDiploma:  1,
			domain.EducationBachelor: 2,
			domain.EducationMaster:   3,
			domain.EducationPhD:      4,
			"Bootcamp":               0,
		}
		for level, want := range cases {
			assert.Equal(t, want, level.Rank(), "level %q", level)
		}
	})

	t.Run("gpa ranks", func(t *testing.T) {
		cases := map[domain.GPABand]int{
			domain.GPANone: 0,
			domain.GPAP:    2,
			domain.GPACR:   3,
			domain.GPAD:    4,
			domain.GPAHD:   5,
			"A+":           0,
		}
		for band, want := range cases {
			assert.Equal(t, want, band.Rank(), "band %q", band)
		}
	})
}

func TestCompute(t *testing.T) {
	t.Run("full profile with three documents", func(t *testing.T) {
		report, err := scoring.Compute(fullProfile(), docs(3))
		assert.NoError(t, err)
		assert.Equal(t, 1.0, report.Completeness)
		assert.Equal(t, 1.0, report.Experience)
		assert.Equal(t, 1.0, report.DocumentStrength)
		assert.Equal(t, 100, report.FitScore)
		assert.Equal(t, scoring.RadarLabels, report.RadarLabels)
	})

	t.Run("empty profile with no documents", func(t *testing.T) {
		report, err := scoring.Compute(&domain.Profile{UserID: "user1"}, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0, report.FitScore)
	})

	t.Run("partially filled profile", func(t *testing.T) {
		grad := time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC)
		p := &domain.Profile{
			UserID:            "user1",
			FullName:          "Alex Chen",
			Education:         domain.EducationMaster,
			GraduationDate:    &grad,
			School:            "UNSW",
			WorkingExperience: 2,
		}
		report, err := scoring.Compute(p, docs(1))
		assert.NoError(t, err)
		assert.Equal(t, 44, report.FitScore)
	})

	t.Run("skill match does not feed the fit score", func(t *testing.T) {
		p := fullProfile()
		p.CareerGoal = "Underwater Basket Weaving"
		report, err := scoring.Compute(p, docs(3))
		assert.NoError(t, err)
		assert.Equal(t, 0.0, report.SkillMatch)
		assert.Equal(t, 100, report.FitScore)
	})

	t.Run("recomputation is deterministic", func(t *testing.T) {
		first, err := scoring.Compute(fullProfile(), docs(2))
		assert.NoError(t, err)
		second, err := scoring.Compute(fullProfile(), docs(2))
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
