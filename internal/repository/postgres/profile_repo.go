package postgres

import (
	"context"
	"errors"

	"pathfinder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT
			id, user_id, COALESCE(full_name, ''), COALESCE(age, 0), birth_date,
			COALESCE(education, ''), graduation_date, COALESCE(school, ''), COALESCE(gpa, ''),
			COALESCE(expected_company, ''), COALESCE(career_goal, ''),
			COALESCE(self_description, ''), COALESCE(internship_experience, ''),
			coding_c, coding_cpp, coding_java, coding_sql, coding_python,
			COALESCE(communication_skill, 0), COALESCE(working_experience, 0),
			is_shared, created_at, updated_at
		FROM profiles WHERE user_id = $1`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Age, &p.BirthDate,
		&p.Education, &p.GraduationDate, &p.School, &p.GPA,
		&p.ExpectedCompany, &p.CareerGoal,
		&p.SelfDescription, &p.InternshipExperience,
		&p.CodingC, &p.CodingCPP, &p.CodingJava, &p.CodingSQL, &p.CodingPython,
		&p.CommunicationSkill, &p.WorkingExperience,
		&p.IsShared, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, full_name, age, birth_date, education, graduation_date,
			school, gpa, expected_company, career_goal, self_description,
			internship_experience, coding_c, coding_cpp, coding_java,
			coding_sql, coding_python, communication_skill, working_experience,
			is_shared, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			age = EXCLUDED.age,
			birth_date = EXCLUDED.birth_date,
			education = EXCLUDED.education,
			graduation_date = EXCLUDED.graduation_date,
			school = EXCLUDED.school,
			gpa = EXCLUDED.gpa,
			expected_company = EXCLUDED.expected_company,
			career_goal = EXCLUDED.career_goal,
			self_description = EXCLUDED.self_description,
			internship_experience = EXCLUDED.internship_experience,
			coding_c = EXCLUDED.coding_c,
			coding_cpp = EXCLUDED.coding_cpp,
			coding_java = EXCLUDED.coding_java,
			coding_sql = EXCLUDED.coding_sql,
			coding_python = EXCLUDED.coding_python,
			communication_skill = EXCLUDED.communication_skill,
			working_experience = EXCLUDED.working_experience,
			is_shared = EXCLUDED.is_shared,
			updated_at = NOW()
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Age, profile.BirthDate,
		profile.Education, profile.GraduationDate, profile.School, profile.GPA,
		profile.ExpectedCompany, profile.CareerGoal, profile.SelfDescription,
		profile.InternshipExperience, profile.CodingC, profile.CodingCPP,
		profile.CodingJava, profile.CodingSQL, profile.CodingPython,
		profile.CommunicationSkill, profile.WorkingExperience, profile.IsShared,
	).Scan(&profile.ID)
}
