package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"savium/internal/apperr"
	"savium/internal/dto"
	"savium/internal/models"
	"savium/internal/repository"
	"savium/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	users      UserStore
	jwtManager *auth.JWTManager
	google     GoogleExchanger
	logger     *zap.Logger
}

func NewAuthService(users UserStore, jwtManager *auth.JWTManager, google GoogleExchanger, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		jwtManager: jwtManager,
		google:     google,
		logger:     logger,
	}
}

// Register creates a password-based account. Only the bcrypt hash of the
// password is ever stored.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already registered.")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Avatar:    req.Avatar,
		FullName:  strings.TrimSpace(req.FullName),
		Email:     email,
		Password:  hashedPassword,
		Role:      models.RoleUser,
		LoginType: models.LoginTypeEmail,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))

	return s.authResponse(user)
}

// Login verifies a password-based account's credentials.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.BadRequest("Invalid email or password.")
		}
		return nil, err
	}

	if user.LoginType != models.LoginTypeEmail {
		return nil, apperr.BadRequest(loginTypeMismatchMessage(user.LoginType))
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.BadRequest("Invalid email or password.")
	}

	return s.authResponse(user)
}

// LoginWithGoogle exchanges the provider code for a profile and signs the
// user in, creating a password-less account on first sight of the email.
func (s *AuthService) LoginWithGoogle(ctx context.Context, code string) (*dto.AuthResponse, error) {
	if code == "" {
		return nil, apperr.BadRequest("Authorization code is required.")
	}

	profile, err := s.google.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("Google code exchange failed", zap.Error(err))
		return nil, err
	}

	email := normalizeEmail(profile.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		now := time.Now()
		user = &models.User{
			ID:        uuid.New(),
			Avatar:    profile.Picture,
			FullName:  profile.Name,
			Email:     email,
			Role:      models.RoleUser,
			LoginType: models.LoginTypeGoogle,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("User registered via Google", zap.String("user_id", user.ID.String()))
	}

	if user.LoginType != models.LoginTypeGoogle {
		return nil, apperr.BadRequest(loginTypeMismatchMessage(user.LoginType))
	}

	return s.authResponse(user)
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func loginTypeMismatchMessage(loginType models.LoginType) string {
	lt := string(loginType)
	return fmt.Sprintf(
		"You have previously registered using %s. Please use the %s login option to access your account.",
		lt, lt,
	)
}
