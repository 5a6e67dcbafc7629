package dto

import (
	"time"

	"jobmarket_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateComplaintRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// ======================
// Response DTOs
// ======================

type ComplaintResponse struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Category    string                   `json:"category,omitempty"`
	Priority    models.ComplaintPriority `json:"priority"`
	Status      models.ComplaintStatus   `json:"status"`
	CreatedAt   time.Time                `json:"createdAt"`
}

func NewComplaintResponse(c *models.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Priority:    c.Priority,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
	}
}
