package domain

import "context"

// ScoreReport is the computed readiness summary for one profile. It is
// derived on every request and never persisted.
type ScoreReport struct {
	Completeness     float64 `json:"completeness"`
	Experience       float64 `json:"experience"`
	DocumentStrength float64 `json:"document_strength"`
	// SkillMatch is the legacy career-goal overlap fraction. Kept for
	// compatibility; it does not feed the fit score.
	SkillMatch float64 `json:"skill_match"`
	FitScore   int     `json:"fit_score"`

	RadarLabels []string `json:"radar_labels"`
	RadarValues []int    `json:"radar_values"`
}

// DashboardStats is the owner's landing-page summary.
type DashboardStats struct {
	Uploads         int `json:"uploads"`
	SharedDocuments int `json:"shared_documents"`
	Applications    int `json:"applications"`
	FitScore        int `json:"fit_score"`
}

type DashboardUsecase interface {
	Stats(ctx context.Context, userID string) (*DashboardStats, error)
	// Visualize computes the score report for ownerID on behalf of
	// requesterID. Cross-user access requires a dashboard grant.
	Visualize(ctx context.Context, requesterID, ownerID string) (*ScoreReport, error)
}
