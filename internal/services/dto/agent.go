package dto

import (
	"time"

	"jobmarket_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type VerifyUserRequest struct {
	Status string `json:"status" validate:"required,oneof=VERIFIED REJECTED"`
	Reason string `json:"reason,omitempty"`
}

// ReportRequest filters the complaint report; "ALL" (or an absent
// statusFilter) means every status.
type ReportRequest struct {
	StartDate    string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	StatusFilter string `json:"statusFilter" validate:"omitempty,oneof=ALL OPEN RESOLVED"`
}

type SupervisedUsersQuery struct {
	Status string `form:"status" validate:"omitempty,oneof=PENDING VERIFIED REJECTED"`
}

// ======================
// Response DTOs
// ======================

type AgentStatsResponse struct {
	PendingComplaints  int64   `json:"pendingComplaints"`
	ResolvedComplaints int64   `json:"resolvedComplaints"`
	UsersVerified      int64   `json:"usersVerified"`
	CaseloadRating     float64 `json:"caseloadRating"`
}

// dashboardDate is the day-precision format the agent dashboard lists
// render as-is.
const dashboardDate = "2006-01-02"

// ComplaintSummary is the dashboard line item: the complainant name and
// the date are pre-formatted so the frontend renders them as-is.
type ComplaintSummary struct {
	ID        string                   `json:"id"`
	Title     string                   `json:"title"`
	Category  string                   `json:"category"`
	Priority  models.ComplaintPriority `json:"priority"`
	User      string                   `json:"user"`
	CreatedAt string                   `json:"createdAt"`
	Status    models.ComplaintStatus   `json:"status"`
}

type VerificationSummary struct {
	ID          string `json:"id"`
	User        string `json:"user"`
	Type        string `json:"type"`
	SubmittedAt string `json:"submittedAt"`
	Documents   int    `json:"documents"`
}

type ReportResponse struct {
	ComplaintsCount int64     `json:"complaintsCount"`
	ResolvedCount   int64     `json:"resolvedCount"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

type SupervisedUserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Country   string            `json:"country,omitempty"`
	IDType    string            `json:"idType,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func NewComplaintSummary(c *models.Complaint) ComplaintSummary {
	name := "Unknown"
	if c.User != nil {
		name = c.User.FirstName + " " + c.User.LastName
	}
	return ComplaintSummary{
		ID:        c.ID,
		Title:     c.Title,
		Category:  c.Category,
		Priority:  c.Priority,
		User:      name,
		CreatedAt: c.CreatedAt.Format(dashboardDate),
		Status:    c.Status,
	}
}

func NewVerificationSummary(u *models.User) VerificationSummary {
	idType := u.IDType
	if idType == "" {
		idType = "ID_VERIFICATION"
	}
	return VerificationSummary{
		ID:          u.ID,
		User:        u.FirstName + " " + u.LastName,
		Type:        idType,
		SubmittedAt: u.CreatedAt.Format(dashboardDate),
		// One document per verification submission today.
		Documents: 1,
	}
}

func NewSupervisedUserResponse(u *models.User) SupervisedUserResponse {
	return SupervisedUserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Country:   u.Country,
		IDType:    u.IDType,
		CreatedAt: u.CreatedAt,
	}
}
