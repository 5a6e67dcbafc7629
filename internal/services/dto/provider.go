package dto

import (
	"time"

	"jobmarket_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateServiceRequest struct {
	Title        string  `json:"title" validate:"required,min=1"`
	Description  string  `json:"description,omitempty"`
	Rate         float64 `json:"rate" validate:"required,gte=0"`
	Availability string  `json:"availability,omitempty"`
}

// UpdateServiceRequest carries pointers so absent fields stay untouched.
type UpdateServiceRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Description  *string  `json:"description,omitempty"`
	Rate         *float64 `json:"rate,omitempty" validate:"omitempty,gte=0"`
	Availability *string  `json:"availability,omitempty"`
}

type UpdateProfileRequest struct {
	FirstName    *string   `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName     *string   `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Phone        *string   `json:"phone,omitempty"`
	Country      *string   `json:"country,omitempty"`
	State        *string   `json:"state,omitempty"`
	City         *string   `json:"city,omitempty"`
	Neighborhood *string   `json:"neighborhood,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Skills       *[]string `json:"skills,omitempty"`
	Experience   *string   `json:"experience,omitempty"`
	HourlyRate   *float64  `json:"hourlyRate,omitempty" validate:"omitempty,gte=0"`
	Availability *string   `json:"availability,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
}

// ======================
// Response DTOs
// ======================

type ServiceResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Rate         float64   `json:"rate"`
	Availability string    `json:"availability,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ProfileResponse struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	Role         models.UserRole   `json:"role"`
	Status       models.UserStatus `json:"status"`
	FirstName    string            `json:"firstName"`
	LastName     string            `json:"lastName"`
	Phone        string            `json:"phone,omitempty"`
	Country      string            `json:"country,omitempty"`
	State        string            `json:"state,omitempty"`
	City         string            `json:"city,omitempty"`
	Neighborhood string            `json:"neighborhood,omitempty"`
	Address      string            `json:"address,omitempty"`
	Skills       []string          `json:"skills"`
	Experience   string            `json:"experience,omitempty"`
	HourlyRate   float64           `json:"hourlyRate"`
	Availability string            `json:"availability,omitempty"`
	Bio          string            `json:"bio,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

type ProviderStatsResponse struct {
	ActiveApplications int64   `json:"activeApplications"`
	CompletedJobs      int64   `json:"completedJobs"`
	TotalEarnings      float64 `json:"totalEarnings"`
	Rating             float64 `json:"rating"`
	ProfileViews       int64   `json:"profileViews"`
}

func NewServiceResponse(s *models.Service) ServiceResponse {
	return ServiceResponse{
		ID:           s.ID,
		Title:        s.Title,
		Description:  s.Description,
		Rate:         s.Rate,
		Availability: s.Availability,
		CreatedAt:    s.CreatedAt,
	}
}
