package service

import (
	"context"
	"errors"
	"time"

	"savium/internal/apperr"
	"savium/internal/dto"
	"savium/internal/models"
	"savium/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService struct {
	users  UserStore
	logger *zap.Logger
}

func NewUserService(users UserStore, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, dto.NewUserResponse(user))
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			existing, err := s.users.GetByEmail(ctx, email)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, apperr.BadRequest("Email is already in use by another account.")
			}
			user.Email = email
		}
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Delete removes the user account only. Goals and transactions owned by the
// user are kept; see the schema notes on the orphan trade-off.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperr.NotFound("User not found.")
	}

	s.logger.Info("User deleted", zap.String("user_id", id.String()))

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) getUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, err
	}
	return user, nil
}
