package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/db"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
	"github.com/pleeno/pleeno/internal/pkg/auth"
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	db         *pgxpool.Pool
	agencyRepo *repositories.AgencyRepository
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	dbPool *pgxpool.Pool,
	agencyRepo *repositories.AgencyRepository,
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		db:         dbPool,
		agencyRepo: agencyRepo,
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new agency together with its first admin user and signs
// the admin in.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	agency := &models.Agency{
		Name:    req.AgencyName,
		Country: req.AgencyCountry,
		Status:  models.AgencyActive,
	}
	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleAdmin,
	}

	err = db.WithTransaction(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.agencyRepo.CreateTx(ctx, tx, agency); err != nil {
			return err
		}
		user.AgencyID = agency.ID
		return s.userRepo.CreateTx(ctx, tx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("agencyId", agency.ID).
		Int64("userId", user.ID).
		Msg("Agency registered")

	return s.issueTokens(ctx, user)
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	agency, err := s.agencyRepo.GetByID(ctx, user.AgencyID)
	if err != nil {
		return nil, err
	}
	if agency.Status == models.AgencySuspended {
		return nil, apperrors.ErrAgencySuspended
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		s.logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to record last login")
	}

	return s.issueTokens(ctx, user)
}

// RefreshTokens rotates a refresh token for a new token pair
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByIDUnscoped(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	agency, err := s.agencyRepo.GetByID(ctx, user.AgencyID)
	if err != nil {
		return nil, err
	}
	if agency.Status == models.AgencySuspended {
		return nil, apperrors.ErrAgencySuspended
	}

	// Rotation: the old token is dead once exchanged
	if err := s.tokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if stored.Revoked {
		return nil
	}
	return s.tokenRepo.Revoke(ctx, stored.ID)
}

// GetProfile returns the authenticated user's profile
func (s *AuthService) GetProfile(ctx context.Context, agencyID, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, agencyID, userID)
	if err != nil {
		return nil, err
	}

	agency, err := s.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:         user.ID,
		AgencyID:   user.AgencyID,
		AgencyName: agency.Name,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       string(user.Role),
	}, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(auth.TokenSubject{
		UserID:   user.ID,
		AgencyID: user.AgencyID,
		Email:    user.Email,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, err
	}

	stored := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}
	if err := s.tokenRepo.Create(ctx, stored); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}
