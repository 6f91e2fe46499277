package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

var AvailableUserRoles = []UserRole{RoleUser, RoleAdmin}

type LoginType string

const (
	LoginTypeEmail  LoginType = "email"
	LoginTypeGoogle LoginType = "google"
)

// User is an account holder. Password is the bcrypt hash and is empty for
// federated (Google) accounts; it is never serialized to clients.
type User struct {
	ID        uuid.UUID `db:"id"`
	Avatar    string    `db:"avatar"`
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      UserRole  `db:"role"`
	LoginType LoginType `db:"login_type"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
