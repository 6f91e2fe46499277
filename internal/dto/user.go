package dto

import "savium/internal/validation"

type UpdateUserRequest struct {
	Avatar   *string `json:"avatar"`
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
}

func (r *UpdateUserRequest) Validate() validation.Errors {
	errs := validation.Errors{}

	if r.Avatar != nil && *r.Avatar != "" && !validation.URL(*r.Avatar) {
		errs.Add("avatar", "Avatar must be a valid URL.")
	}
	if r.FullName != nil && !validation.MinLen(*r.FullName, 3) {
		errs.Add("fullName", "Full name must be at least 3 characters.")
	}
	if r.Email != nil && !validation.Email(*r.Email) {
		errs.Add("email", "Email is invalid.")
	}

	return errs
}
