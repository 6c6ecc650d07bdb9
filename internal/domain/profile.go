package domain

import (
	"context"
	"time"
)

// ============================================================================
// Education Level
// ============================================================================

// EducationLevel is the highest education category on a profile.
type EducationLevel string

const (
	EducationNone     EducationLevel = ""
	EducationDiploma  EducationLevel = "Diploma"
	EducationBachelor EducationLevel = "Bachelor"
	EducationMaster   EducationLevel = "Master"
	EducationPhD      EducationLevel = "PhD"
)

// ValidEducationLevels returns all selectable education levels.
func ValidEducationLevels() []EducationLevel {
	return []EducationLevel{EducationDiploma, EducationBachelor, EducationMaster, EducationPhD}
}

// IsValid checks if the education level is a known value. Empty means unset.
func (e EducationLevel) IsValid() bool {
	if e == EducationNone {
		return true
	}
	for _, valid := range ValidEducationLevels() {
		if e == valid {
			return true
		}
	}
	return false
}

// Rank maps the level onto the 0-4 radar scale. Unknown values rank 0.
func (e EducationLevel) Rank() int {
	switch e {
	case EducationDiploma:
		return 1
	case EducationBachelor:
		return 2
	case EducationMaster:
		return 3
	case EducationPhD:
		return 4
	default:
		return 0
	}
}

// ============================================================================
// GPA Band
// ============================================================================

// GPABand is the grade band on a profile (Australian-style P/CR/D/HD).
type GPABand string

const (
	GPANone GPABand = ""
	GPAP    GPABand = "P"
	GPACR   GPABand = "CR"
	GPAD    GPABand = "D"
	GPAHD   GPABand = "HD"
)

// ValidGPABands returns all selectable GPA bands.
func ValidGPABands() []GPABand {
	return []GPABand{GPAP, GPACR, GPAD, GPAHD}
}

// IsValid checks if the GPA band is a known value. Empty means unset.
func (g GPABand) IsValid() bool {
	if g == GPANone {
		return true
	}
	for _, valid := range ValidGPABands() {
		if g == valid {
			return true
		}
	}
	return false
}

// Rank maps the band onto the radar scale. The scale starts at 2 so that a
// passing grade still registers; unset or unknown ranks 0.
func (g GPABand) Rank() int {
	switch g {
	case GPAP:
		return 2
	case GPACR:
		return 3
	case GPAD:
		return 4
	case GPAHD:
		return 5
	default:
		return 0
	}
}

// ============================================================================
// Profile
// ============================================================================

// Profile holds one user's career readiness data. There is at most one row
// per user; a missing row means scores are undefined and the caller should
// prompt profile creation.
type Profile struct {
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`

	FullName       string     `json:"full_name" validate:"omitempty,max=120,valid_name"`
	Age            int        `json:"age" validate:"omitempty,gte=0,lte=150"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Education      EducationLevel `json:"education" validate:"education_level"`
	GraduationDate *time.Time `json:"graduation_date,omitempty"`
	School         string     `json:"school" validate:"omitempty,max=200"`
	GPA            GPABand    `json:"gpa" validate:"gpa_band"`

	ExpectedCompany      string `json:"expected_company" validate:"omitempty,max=200"`
	CareerGoal           string `json:"career_goal" validate:"omitempty,max=200"`
	SelfDescription      string `json:"self_description"`
	InternshipExperience string `json:"internship_experience"`

	CodingC      bool `json:"coding_c"`
	CodingCPP    bool `json:"coding_cpp"`
	CodingJava   bool `json:"coding_java"`
	CodingSQL    bool `json:"coding_sql"`
	CodingPython bool `json:"coding_python"`

	CommunicationSkill int `json:"communication_skill" validate:"gte=0,lte=5"`
	WorkingExperience  int `json:"working_experience" validate:"gte=0"`

	// Legacy global-share flag, superseded by dashboard grants.
	IsShared bool `json:"is_shared"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CodingSkillCount returns how many coding-skill flags are set (0-5).
func (p *Profile) CodingSkillCount() int {
	count := 0
	for _, flag := range []bool{p.CodingC, p.CodingCPP, p.CodingJava, p.CodingSQL, p.CodingPython} {
		if flag {
			count++
		}
	}
	return count
}

type ProfileRepository interface {
	// GetByUserID returns (nil, nil) when the user has no profile yet.
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	GetOwn(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
}
