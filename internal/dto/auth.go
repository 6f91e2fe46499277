package dto

import (
	"time"

	"savium/internal/models"
	"savium/internal/validation"
)

type RegisterRequest struct {
	Avatar   string `json:"avatar"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Validate() validation.Errors {
	errs := validation.Errors{}

	if r.Avatar != "" && !validation.URL(r.Avatar) {
		errs.Add("avatar", "Avatar must be a valid URL.")
	}
	if !validation.Required(r.FullName) {
		errs.Add("fullName", "Full name is required.")
	} else if !validation.MinLen(r.FullName, 3) {
		errs.Add("fullName", "Full name must be at least 3 characters.")
	}
	if !validation.Required(r.Email) {
		errs.Add("email", "Email is required.")
	} else if !validation.Email(r.Email) {
		errs.Add("email", "Email is invalid.")
	}
	if !validation.Required(r.Password) {
		errs.Add("password", "Password is required.")
	}

	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() validation.Errors {
	errs := validation.Errors{}

	if !validation.Required(r.Email) {
		errs.Add("email", "Email is required.")
	} else if !validation.Email(r.Email) {
		errs.Add("email", "Email is invalid.")
	}
	if !validation.Required(r.Password) {
		errs.Add("password", "Password is required.")
	}

	return errs
}

type UserResponse struct {
	ID        string    `json:"id"`
	Avatar    string    `json:"avatar,omitempty"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	LoginType string    `json:"loginType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse maps a user to its client shape. The password hash never
// leaves the server.
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Avatar:    user.Avatar,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		LoginType: string(user.LoginType),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
