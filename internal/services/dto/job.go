package dto

import (
	"time"

	"jobmarket_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category" validate:"required,min=1"`
	// Budget arrives as a JSON string or number from the dashboard
	// forms; malformed values coerce to zero.
	Budget  interface{} `json:"budget" validate:"required"`
	Country string      `json:"country" validate:"required,min=1"`
	State   string      `json:"state,omitempty"`
	City    string      `json:"city,omitempty"`
	Urgency string      `json:"urgency" validate:"required,oneof=LOW NORMAL HIGH URGENT"`
}

type JobListQuery struct {
	Location string `form:"location"`
	Category string `form:"category"`
	Country  string `form:"country"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type ApplyRequest struct {
	Message string `json:"message" validate:"required,min=1"`
	// Same coercion rule as Budget.
	ProposedRate interface{} `json:"proposedRate,omitempty"`
}

// ======================
// Response DTOs
// ======================

type JobResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category"`
	Budget      float64           `json:"budget"`
	Country     string            `json:"country"`
	State       string            `json:"state,omitempty"`
	City        string            `json:"city,omitempty"`
	Urgency     models.JobUrgency `json:"urgency"`
	Status      models.JobStatus  `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	Creator     *CreatorInfo      `json:"creator,omitempty"`
}

type CreatorInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type JobListResponse struct {
	Jobs     []JobResponse `json:"jobs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
	Pages    int           `json:"pages"`
}

type ApplicationResponse struct {
	ID           string                   `json:"id"`
	JobID        string                   `json:"jobId"`
	Message      string                   `json:"message"`
	ProposedRate *float64                 `json:"proposedRate,omitempty"`
	Status       models.ApplicationStatus `json:"status"`
	CreatedAt    time.Time                `json:"createdAt"`
}

func NewJobResponse(j *models.Job) JobResponse {
	resp := JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Category:    j.Category,
		Budget:      j.Budget,
		Country:     j.Country,
		State:       j.State,
		City:        j.City,
		Urgency:     j.Urgency,
		Status:      j.Status,
		CreatedAt:   j.CreatedAt,
	}
	if j.Creator != nil {
		resp.Creator = &CreatorInfo{
			FirstName: j.Creator.FirstName,
			LastName:  j.Creator.LastName,
		}
	}
	return resp
}

func NewApplicationResponse(a *models.JobApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID,
		JobID:        a.JobID,
		Message:      a.Message,
		ProposedRate: a.ProposedRate,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
	}
}
