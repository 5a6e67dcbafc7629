package dto

import (
	"time"

	"jobmarket_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type AdminUsersQuery struct {
	Role     string `form:"role" validate:"omitempty,oneof=CLIENT PROVIDER AGENT ADMIN"`
	Status   string `form:"status" validate:"omitempty,oneof=PENDING VERIFIED REJECTED"`
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// ======================
// Response DTOs
// ======================

type AdminUserResponse struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Country   string            `json:"country,omitempty"`
	AgentID   *string           `json:"agentId,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

type AdminUserListResponse struct {
	Users    []AdminUserResponse `json:"users"`
	Total    int64               `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
}

type PlatformStatsResponse struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalClients   int64 `json:"totalClients"`
	TotalProviders int64 `json:"totalProviders"`
	TotalAgents    int64 `json:"totalAgents"`
	OpenJobs       int64 `json:"openJobs"`
	CompletedJobs  int64 `json:"completedJobs"`
	OpenComplaints int64 `json:"openComplaints"`
	PendingUsers   int64 `json:"pendingUsers"`
}

func NewAdminUserResponse(u *models.User) AdminUserResponse {
	return AdminUserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Country:   u.Country,
		AgentID:   u.AgentID,
		CreatedAt: u.CreatedAt,
	}
}
