package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"pathfinder-backend/config"
	"pathfinder-backend/internal/domain"
	"pathfinder-backend/internal/usecase"
	"pathfinder-backend/pkg/email"
	"pathfinder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByIdentity(ctx context.Context, identity string) (*domain.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListOthers(ctx context.Context, excludeID string) ([]domain.User, error) {
	args := m.Called(ctx, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	return m.Called(ctx, doc).Error(0)
}
func (m *MockDocumentRepo) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Document, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}
func (m *MockDocumentRepo) CountByUserID(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
func (m *MockDocumentRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockShareRepo struct {
	mock.Mock
}

func (m *MockShareRepo) DocumentGrantees(ctx context.Context, docIDs []int64) (map[int64][]string, error) {
	args := m.Called(ctx, docIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]string), args.Error(1)
}
func (m *MockShareRepo) DashboardGrantees(ctx context.Context, ownerID string) ([]string, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockShareRepo) VizShareExists(ctx context.Context, ownerID, granteeID string) (bool, error) {
	args := m.Called(ctx, ownerID, granteeID)
	return args.Bool(0), args.Error(1)
}
func (m *MockShareRepo) DocumentGrantsFor(ctx context.Context, granteeID string, docIDs []int64) ([]domain.SharedWith, error) {
	args := m.Called(ctx, granteeID, docIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SharedWith), args.Error(1)
}
func (m *MockShareRepo) ListSharedDocuments(ctx context.Context, granteeID string) ([]domain.SharedDocument, error) {
	args := m.Called(ctx, granteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SharedDocument), args.Error(1)
}
func (m *MockShareRepo) ListDashboardOwners(ctx context.Context, granteeID string) ([]domain.User, error) {
	args := m.Called(ctx, granteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockShareRepo) CountDistinctSharedDocuments(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}
func (m *MockShareRepo) ApplySharingUpdate(ctx context.Context, ownerID string, update *domain.SharingUpdate) error {
	return m.Called(ctx, ownerID, update).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobHistory) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) ListByUserID(ctx context.Context, userID string) ([]domain.JobHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobHistory), args.Error(1)
}
func (m *MockJobRepo) CountByUserID(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type MockResetRepo struct {
	mock.Mock
}

func (m *MockResetRepo) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	return m.Called(ctx, token).Error(0)
}
func (m *MockResetRepo) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordResetToken), args.Error(1)
}
func (m *MockResetRepo) MarkUsed(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", TokenTTLMin: 60, ResetTokenTTLMin: 30}
}

// Auth

func TestAuthSignup(t *testing.T) {
	t.Run("Should reject invalid request bodies", func(t *testing.T) {
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, new(MockResetRepo), email.NewEmailService(testConfig()), testConfig(), newValidator())

		_, err := uc.Signup(context.Background(), &domain.SignupRequest{
			Username: "ab", // too short
			Email:    "not-an-email",
			Password: "short",
		})
		assert.Error(t, err)
		users.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject taken identities", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByIdentity", mock.Anything, "alice").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
		uc := usecase.NewAuthUsecase(users, new(MockResetRepo), email.NewEmailService(testConfig()), testConfig(), newValidator())

		_, err := uc.Signup(context.Background(), &domain.SignupRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already taken")
	})

	t.Run("Should hash the password before storing", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByIdentity", mock.Anything, mock.Anything).Return(nil, nil)
		users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotEqual(t, "password123", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))
			assert.NotEmpty(t, u.ID)
		})
		uc := usecase.NewAuthUsecase(users, new(MockResetRepo), email.NewEmailService(testConfig()), testConfig(), newValidator())

		user, err := uc.Signup(context.Background(), &domain.SignupRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		users.AssertExpectations(t)
	})
}

func TestAuthLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	stored := &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", PasswordHash: string(hash)}

	t.Run("Should issue a token on valid credentials", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByIdentity", mock.Anything, "alice").Return(stored, nil)
		uc := usecase.NewAuthUsecase(users, new(MockResetRepo), email.NewEmailService(testConfig()), testConfig(), newValidator())

		result, err := uc.Login(context.Background(), &domain.LoginRequest{Identity: "alice", Password: "password123"})
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "u1", result.User.ID)
	})

	t.Run("Should use the same message for unknown user and wrong password", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByIdentity", mock.Anything, "ghost").Return(nil, nil)
		users.On("GetByIdentity", mock.Anything, "alice").Return(stored, nil)
		uc := usecase.NewAuthUsecase(users, new(MockResetRepo), email.NewEmailService(testConfig()), testConfig(), newValidator())

		_, errUnknown := uc.Login(context.Background(), &domain.LoginRequest{Identity: "ghost", Password: "password123"})
		_, errWrongPw := uc.Login(context.Background(), &domain.LoginRequest{Identity: "alice", Password: "nope-nope"})
		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPw)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})
}

func TestAuthPasswordReset(t *testing.T) {
	t.Run("ForgotPassword stays silent for unknown addresses", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByIdentity", mock.Anything, "ghost@example.com").Return(nil, nil)
		resets := new(MockResetRepo)
		uc := usecase.NewAuthUsecase(users, resets, email.NewEmailService(testConfig()), testConfig(), newValidator())

		err := uc.ForgotPassword(context.Background(), "ghost@example.com")
		assert.NoError(t, err)
		resets.AssertNotCalled(t, "Create")
	})

	t.Run("ResetPassword rejects expired tokens", func(t *testing.T) {
		resets := new(MockResetRepo)
		resets.On("GetByToken", mock.Anything, "tok").Return(&domain.PasswordResetToken{
			ID:        1,
			UserID:    "u1",
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)
		users := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(users, resets, email.NewEmailService(testConfig()), testConfig(), newValidator())

		err := uc.ResetPassword(context.Background(), "tok", "newpassword1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid or expired")
		users.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("ResetPassword marks the token used", func(t *testing.T) {
		resets := new(MockResetRepo)
		resets.On("GetByToken", mock.Anything, "tok").Return(&domain.PasswordResetToken{
			ID:        1,
			UserID:    "u1",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		}, nil)
		resets.On("MarkUsed", mock.Anything, int64(1)).Return(nil)
		users := new(MockUserRepo)
		users.On("UpdatePassword", mock.Anything, "u1", mock.AnythingOfType("string")).Return(nil)
		uc := usecase.NewAuthUsecase(users, resets, email.NewEmailService(testConfig()), testConfig(), newValidator())

		err := uc.ResetPassword(context.Background(), "tok", "newpassword1")
		assert.NoError(t, err)
		resets.AssertExpectations(t)
		users.AssertExpectations(t)
	})
}

// Profile

func TestProfileIdentity(t *testing.T) {
	uc := usecase.NewProfileUsecase(new(MockProfileRepo), newValidator())

	t.Run("Should fail when context user does not match argument", func(t *testing.T) {
		_, err := uc.GetOwn(authedCtx("user1"), "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when context identity is missing", func(t *testing.T) {
		_, err := uc.GetOwn(context.Background(), "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestProfileUpsert(t *testing.T) {
	t.Run("Should force UserID from context", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "user1", p.UserID)
		})
		uc := usecase.NewProfileUsecase(repo, newValidator())

		err := uc.Upsert(authedCtx("user1"), &domain.Profile{
			UserID:   "hacker_try",
			FullName: "Alex Chen",
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject unknown education levels", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		err := uc.Upsert(authedCtx("user1"), &domain.Profile{Education: "Bootcamp"})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Upsert")
	})

	t.Run("Should reject out-of-range communication skill", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo, newValidator())

		err := uc.Upsert(authedCtx("user1"), &domain.Profile{CommunicationSkill: 6})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Upsert")
	})
}

// Documents

func TestDocumentUpload(t *testing.T) {
	t.Run("Should reject disallowed extensions", func(t *testing.T) {
		docs := new(MockDocumentRepo)
		uc := usecase.NewDocumentUsecase(docs, new(MockShareRepo), nil, 10<<20)

		_, err := uc.Upload(authedCtx("user1"), "user1", &domain.DocumentUpload{
			FileName: "malware.exe",
			Size:     100,
			Body:     strings.NewReader("x"),
		})
		assert.Error(t, err)
		docs.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject uploads for another user", func(t *testing.T) {
		uc := usecase.NewDocumentUsecase(new(MockDocumentRepo), new(MockShareRepo), nil, 10<<20)

		_, err := uc.Upload(authedCtx("user1"), "user2", &domain.DocumentUpload{FileName: "cv.pdf"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})
}

func TestDocumentDelete(t *testing.T) {
	t.Run("Only the owner may delete", func(t *testing.T) {
		docs := new(MockDocumentRepo)
		docs.On("GetByID", mock.Anything, int64(7)).Return(&domain.Document{ID: 7, UserID: "owner"}, nil)
		uc := usecase.NewDocumentUsecase(docs, new(MockShareRepo), nil, 10<<20)

		err := uc.Delete(authedCtx("intruder"), "intruder", 7)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authorized to delete")
		docs.AssertNotCalled(t, "Delete")
	})

	t.Run("Unknown documents are NotFound", func(t *testing.T) {
		docs := new(MockDocumentRepo)
		docs.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)
		uc := usecase.NewDocumentUsecase(docs, new(MockShareRepo), nil, 10<<20)

		err := uc.Delete(authedCtx("user1"), "user1", 404)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Document not found")
	})
}

func TestDocumentListVisible(t *testing.T) {
	ownerDocs := []domain.Document{
		{ID: 1, UserID: "owner", FileName: "granted.pdf"},
		{ID: 2, UserID: "owner", FileName: "public.pdf", IsShared: true},
		{ID: 3, UserID: "owner", FileName: "private.pdf"},
	}

	t.Run("Grantee without dashboard access sees only direct grants", func(t *testing.T) {
		docs := new(MockDocumentRepo)
		docs.On("ListByUserID", mock.Anything, "owner").Return(ownerDocs, nil)
		shares := new(MockShareRepo)
		shares.On("DocumentGrantsFor", mock.Anything, "viewer", []int64{1, 2, 3}).
			Return([]domain.SharedWith{{DocumentID: 1, SharedToUserID: "viewer"}}, nil)
		shares.On("DashboardGrantees", mock.Anything, "owner").Return([]string{}, nil)
		uc := usecase.NewDocumentUsecase(docs, shares, nil, 10<<20)

		visible, err := uc.ListVisible(authedCtx("viewer"), "viewer", "owner")
		assert.NoError(t, err)
		assert.Len(t, visible, 1)
		assert.Equal(t, int64(1), visible[0].ID)
	})

	t.Run("Dashboard grant unlocks public documents too", func(t *testing.T) {
		docs := new(MockDocumentRepo)
		docs.On("ListByUserID", mock.Anything, "owner").Return(ownerDocs, nil)
		shares := new(MockShareRepo)
		shares.On("DocumentGrantsFor", mock.Anything, "viewer", []int64{1, 2, 3}).
			Return([]domain.SharedWith{{DocumentID: 1, SharedToUserID: "viewer"}}, nil)
		shares.On("DashboardGrantees", mock.Anything, "owner").Return([]string{"viewer"}, nil)
		uc := usecase.NewDocumentUsecase(docs, shares, nil, 10<<20)

		visible, err := uc.ListVisible(authedCtx("viewer"), "viewer", "owner")
		assert.NoError(t, err)
		assert.Len(t, visible, 2)
	})

	t.Run("Stranger gets an empty list, not an error", func(t *testing.T) {
		docs := new(MockDocumentRepo)
		docs.On("ListByUserID", mock.Anything, "owner").Return(ownerDocs, nil)
		shares := new(MockShareRepo)
		shares.On("DocumentGrantsFor", mock.Anything, "stranger", []int64{1, 2, 3}).Return([]domain.SharedWith{}, nil)
		shares.On("DashboardGrantees", mock.Anything, "owner").Return([]string{}, nil)
		uc := usecase.NewDocumentUsecase(docs, shares, nil, 10<<20)

		visible, err := uc.ListVisible(authedCtx("stranger"), "stranger", "owner")
		assert.NoError(t, err)
		assert.Empty(t, visible)
	})
}

// Sharing

func TestUpdateSharing(t *testing.T) {
	t.Run("Should reject submissions touching documents the user does not own", func(t *testing.T) {
		docs := new(MockDocumentRepo)
		docs.On("ListByUserID", mock.Anything, "user1").Return([]domain.Document{{ID: 1, UserID: "user1"}}, nil)
		shares := new(MockShareRepo)
		shares.On("DocumentGrantees", mock.Anything, []int64{1}).Return(map[int64][]string{}, nil)
		uc := usecase.NewShareUsecase(shares, docs, new(MockUserRepo), newValidator())

		err := uc.UpdateSharing(authedCtx("user1"), "user1", &domain.UpdateSharingRequest{
			Documents: []domain.DocumentSharingInput{{ID: 999, Public: true}},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own documents")
		shares.AssertNotCalled(t, "ApplySharingUpdate")
	})

	t.Run("Should apply only the reconciled difference", func(t *testing.T) {
		docs := new(MockDocumentRepo)
		docs.On("ListByUserID", mock.Anything, "user1").Return([]domain.Document{{ID: 1, UserID: "user1"}}, nil)
		shares := new(MockShareRepo)
		shares.On("DocumentGrantees", mock.Anything, []int64{1}).Return(map[int64][]string{1: {"bob", "erin"}}, nil)
		shares.On("DashboardGrantees", mock.Anything, "user1").Return([]string{"bob"}, nil)
		shares.On("ApplySharingUpdate", mock.Anything, "user1", mock.AnythingOfType("*domain.SharingUpdate")).Return(nil).Run(func(args mock.Arguments) {
			update := args.Get(2).(*domain.SharingUpdate)
			assert.Len(t, update.Documents, 1)
			assert.Equal(t, []string{"carol"}, update.Documents[0].Grants.ToAdd)
			assert.Equal(t, []string{"erin"}, update.Documents[0].Grants.ToRemove)
			assert.True(t, update.Dashboard.Empty())
		})
		uc := usecase.NewShareUsecase(shares, docs, new(MockUserRepo), newValidator())

		err := uc.UpdateSharing(authedCtx("user1"), "user1", &domain.UpdateSharingRequest{
			Documents:           []domain.DocumentSharingInput{{ID: 1, GranteeIDs: []string{"bob", "carol"}}},
			DashboardGranteeIDs: []string{"bob"},
		})
		assert.NoError(t, err)
		shares.AssertExpectations(t)
	})

	t.Run("Should strip self-grants", func(t *testing.T) {
		docs := new(MockDocumentRepo)
		docs.On("ListByUserID", mock.Anything, "user1").Return([]domain.Document{}, nil)
		shares := new(MockShareRepo)
		shares.On("DocumentGrantees", mock.Anything, []int64{}).Return(map[int64][]string{}, nil)
		shares.On("DashboardGrantees", mock.Anything, "user1").Return([]string{}, nil)
		shares.On("ApplySharingUpdate", mock.Anything, "user1", mock.AnythingOfType("*domain.SharingUpdate")).Return(nil).Run(func(args mock.Arguments) {
			update := args.Get(2).(*domain.SharingUpdate)
			assert.Equal(t, []string{"bob"}, update.Dashboard.ToAdd)
		})
		uc := usecase.NewShareUsecase(shares, docs, new(MockUserRepo), newValidator())

		err := uc.UpdateSharing(authedCtx("user1"), "user1", &domain.UpdateSharingRequest{
			DashboardGranteeIDs: []string{"user1", "bob"},
		})
		assert.NoError(t, err)
		shares.AssertExpectations(t)
	})

	t.Run("Reapplying the same state is a no-op diff", func(t *testing.T) {
		docs := new(MockDocumentRepo)
		docs.On("ListByUserID", mock.Anything, "user1").Return([]domain.Document{{ID: 1, UserID: "user1"}}, nil)
		shares := new(MockShareRepo)
		shares.On("DocumentGrantees", mock.Anything, []int64{1}).Return(map[int64][]string{1: {"bob"}}, nil)
		shares.On("DashboardGrantees", mock.Anything, "user1").Return([]string{"bob"}, nil)
		shares.On("ApplySharingUpdate", mock.Anything, "user1", mock.AnythingOfType("*domain.SharingUpdate")).Return(nil).Run(func(args mock.Arguments) {
			update := args.Get(2).(*domain.SharingUpdate)
			assert.True(t, update.Documents[0].Grants.Empty())
			assert.True(t, update.Dashboard.Empty())
		})
		uc := usecase.NewShareUsecase(shares, docs, new(MockUserRepo), newValidator())

		err := uc.UpdateSharing(authedCtx("user1"), "user1", &domain.UpdateSharingRequest{
			Documents:           []domain.DocumentSharingInput{{ID: 1, GranteeIDs: []string{"bob"}}},
			DashboardGranteeIDs: []string{"bob"},
		})
		assert.NoError(t, err)
		shares.AssertExpectations(t)
	})
}

// Dashboard

func TestDashboardVisualize(t *testing.T) {
	fullProfile := &domain.Profile{
		UserID:    "owner",
		FullName:  "Alex Chen",
		Education: domain.EducationBachelor,
	}

	t.Run("Owner may always visualize themselves", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, "owner").Return(fullProfile, nil)
		docs := new(MockDocumentRepo)
		docs.On("ListByUserID", mock.Anything, "owner").Return([]domain.Document{}, nil)
		uc := usecase.NewDashboardUsecase(profiles, docs, new(MockShareRepo), new(MockJobRepo))

		report, err := uc.Visualize(authedCtx("owner"), "owner", "")
		assert.NoError(t, err)
		assert.NotNil(t, report)
	})

	t.Run("Cross-user access needs a dashboard grant", func(t *testing.T) {
		shares := new(MockShareRepo)
		shares.On("DashboardGrantees", mock.Anything, "owner").Return([]string{"someone_else"}, nil)
		uc := usecase.NewDashboardUsecase(new(MockProfileRepo), new(MockDocumentRepo), shares, new(MockJobRepo))

		_, err := uc.Visualize(authedCtx("viewer"), "viewer", "owner")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authorized to view that dashboard")
	})

	t.Run("Granted viewer sees the owner's report", func(t *testing.T) {
		shares := new(MockShareRepo)
		shares.On("DashboardGrantees", mock.Anything, "owner").Return([]string{"viewer"}, nil)
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, "owner").Return(fullProfile, nil)
		docs := new(MockDocumentRepo)
		docs.On("ListByUserID", mock.Anything, "owner").Return([]domain.Document{{ID: 1, UserID: "owner"}}, nil)
		uc := usecase.NewDashboardUsecase(profiles, docs, shares, new(MockJobRepo))

		report, err := uc.Visualize(authedCtx("viewer"), "viewer", "owner")
		assert.NoError(t, err)
		assert.NotNil(t, report)
	})

	t.Run("Missing profile yields NotFound", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, "owner").Return(nil, nil)
		docs := new(MockDocumentRepo)
		docs.On("ListByUserID", mock.Anything, "owner").Return([]domain.Document{}, nil)
		uc := usecase.NewDashboardUsecase(profiles, docs, new(MockShareRepo), new(MockJobRepo))

		_, err := uc.Visualize(authedCtx("owner"), "owner", "owner")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No profile found")
	})
}

func TestDashboardStats(t *testing.T) {
	t.Run("Missing profile scores zero instead of failing", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, "user1").Return(nil, nil)
		docs := new(MockDocumentRepo)
		docs.On("CountByUserID", mock.Anything, "user1").Return(2, nil)
		docs.On("ListByUserID", mock.Anything, "user1").Return([]domain.Document{}, nil)
		shares := new(MockShareRepo)
		shares.On("CountDistinctSharedDocuments", mock.Anything, "user1").Return(1, nil)
		jobs := new(MockJobRepo)
		jobs.On("CountByUserID", mock.Anything, "user1").Return(3, nil)
		uc := usecase.NewDashboardUsecase(profiles, docs, shares, jobs)

		stats, err := uc.Stats(authedCtx("user1"), "user1")
		assert.NoError(t, err)
		assert.Equal(t, 2, stats.Uploads)
		assert.Equal(t, 1, stats.SharedDocuments)
		assert.Equal(t, 3, stats.Applications)
		assert.Equal(t, 0, stats.FitScore)
	})
}

// Jobs

func TestJobHistory(t *testing.T) {
	t.Run("Cross-user listing rides on the dashboard grant", func(t *testing.T) {
		shares := new(MockShareRepo)
		shares.On("DashboardGrantees", mock.Anything, "owner").Return([]string{}, nil)
		uc := usecase.NewJobUsecase(new(MockJobRepo), shares, newValidator())

		_, err := uc.List(authedCtx("viewer"), "viewer", "owner")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authorized")
	})

	t.Run("Add forces UserID from context", func(t *testing.T) {
		jobs := new(MockJobRepo)
		jobs.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobHistory")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.JobHistory)
			assert.Equal(t, "user1", j.UserID)
		})
		uc := usecase.NewJobUsecase(jobs, new(MockShareRepo), newValidator())

		err := uc.Add(authedCtx("user1"), "user1", &domain.JobHistory{
			UserID:      "hacker_try",
			CompanyName: "Acme",
			Position:    "Engineer",
		})
		assert.NoError(t, err)
		jobs.AssertExpectations(t)
	})

	t.Run("Add rejects missing required fields", func(t *testing.T) {
		jobs := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobs, new(MockShareRepo), newValidator())

		err := uc.Add(authedCtx("user1"), "user1", &domain.JobHistory{})
		assert.Error(t, err)
		jobs.AssertNotCalled(t, "Create")
	})
}
