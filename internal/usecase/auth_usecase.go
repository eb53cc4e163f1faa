package usecase

import (
	"context"

	"mdent-api/internal/converter"
	"mdent-api/internal/delivery/dto"
	"mdent-api/internal/domain/entity"
	"mdent-api/internal/domain/repository"
	"mdent-api/pkg/apperrors"
	"mdent-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedDoneKey marks that the one-time bootstrap already ran.
const seedDoneKey = "mdent:seed:done"

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	SeedAdmin(ctx context.Context, req *dto.SeedRequest) (*dto.UserResponse, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, apperrors.Internal(err)
	}
	// An unknown email and a wrong password must be indistinguishable.
	if user == nil {
		return nil, apperrors.InvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.InvalidCredentials()
	}

	token, err := u.jwtService.GenerateToken(user)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, apperrors.Internal(err)
	}

	return &dto.TokenResponse{Token: token}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user")
	}

	return converter.UserToResponse(user), nil
}

// SeedAdmin bootstraps the first admin account. It refuses to run twice:
// once a marker is set or any admin exists, further calls are forbidden.
func (u *authUsecase) SeedAdmin(ctx context.Context, req *dto.SeedRequest) (*dto.UserResponse, error) {
	done, err := u.redisClient.Exists(ctx, seedDoneKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check seed marker: %+v", err)
		return nil, apperrors.Internal(err)
	}
	if done > 0 {
		return nil, apperrors.Forbidden()
	}

	admins, err := u.userRepo.CountByRole(ctx, u.db, entity.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to count admins: %+v", err)
		return nil, apperrors.Internal(err)
	}
	if admins > 0 {
		return nil, apperrors.Forbidden()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, apperrors.Internal(err)
	}

	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		Role:     entity.RoleAdmin,
	}

	if err := u.userRepo.Create(ctx, u.db, user); err != nil {
		u.log.Warnf("Failed to create admin user: %+v", err)
		return nil, apperrors.FromStore(err)
	}

	if err := u.redisClient.Set(ctx, seedDoneKey, "1", 0).Err(); err != nil {
		u.log.Warnf("Failed to set seed marker: %+v", err)
	}

	return converter.UserToResponse(user), nil
}
