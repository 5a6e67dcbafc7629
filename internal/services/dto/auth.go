package dto

import (
	"jobmarket_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required,min=1"`
	LastName  string `json:"lastName" validate:"required,min=1"`
	Role      string `json:"role" validate:"required,oneof=CLIENT PROVIDER AGENT"`
	Country   string `json:"country" validate:"required,min=1"`
	State     string `json:"state,omitempty"`
	City      string `json:"city,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ======================
// Response DTOs
// ======================

// UserProjection is the allow-listed public shape of a user; full rows
// never leave the API.
type UserProjection struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
}

type SignupResponse struct {
	Message string         `json:"message"`
	User    UserProjection `json:"user"`
}

type SigninResponse struct {
	Token string         `json:"token"`
	User  UserProjection `json:"user"`
}

func NewUserProjection(u *models.User) UserProjection {
	return UserProjection{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
