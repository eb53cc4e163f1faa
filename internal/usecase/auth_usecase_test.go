package usecase

import (
	"context"
	"testing"
	"time"

	"mdent-api/config"
	"mdent-api/internal/delivery/dto"
	"mdent-api/internal/domain/entity"
	"mdent-api/pkg/apperrors"
	"mdent-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
	admins  int64
	created *entity.User
	err     error
}

func (f *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	f.created = user
	return f.err
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	return f.byEmail[email], f.err
}

func (f *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return f.byID[id], f.err
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, db *gorm.DB, role string) (int64, error) {
	return f.admins, f.err
}

func newAuthFixture(t *testing.T) (AuthUsecase, *fakeUserRepo, *jwt.JWTService) {
	t.Helper()
	jwtService, err := jwt.NewJWTService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: 12 * time.Hour,
	})
	require.NoError(t, err)

	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &entity.User{
		ID:       uuid.New(),
		Email:    "admin@mdent.cloud",
		Password: string(hashed),
		FullName: "Clinic Admin",
		Role:     entity.RoleAdmin,
	}

	repo := &fakeUserRepo{
		byEmail: map[string]*entity.User{admin.Email: admin},
		byID:    map[uuid.UUID]*entity.User{admin.ID: admin},
	}

	return NewAuthUsecase(nil, testLogger(), repo, jwtService, nil), repo, jwtService
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	u, repo, jwtService := newAuthFixture(t)
	admin := repo.byEmail["admin@mdent.cloud"]

	resp, err := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@mdent.cloud",
		Password: "changeme123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// The token recovers the original subject and role.
	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	u, _, _ := newAuthFixture(t)

	_, err := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@mdent.cloud",
		Password: "wrong",
	})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindInvalidCredentials, appErr.Kind)
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	u, _, _ := newAuthFixture(t)

	_, unknownErr := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@mdent.cloud",
		Password: "changeme123",
	})
	_, wrongErr := u.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@mdent.cloud",
		Password: "wrong",
	})

	// Same failure kind either way, no account-existence oracle.
	unknownApp, ok := apperrors.As(unknownErr)
	require.True(t, ok)
	wrongApp, ok := apperrors.As(wrongErr)
	require.True(t, ok)
	assert.Equal(t, unknownApp.Kind, wrongApp.Kind)
}

func TestGetCurrentUser(t *testing.T) {
	u, repo, _ := newAuthFixture(t)
	admin := repo.byEmail["admin@mdent.cloud"]

	resp, err := u.GetCurrentUser(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, resp.Email)
	assert.Equal(t, entity.RoleAdmin, resp.Role)

	_, err = u.GetCurrentUser(context.Background(), uuid.New())
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}
