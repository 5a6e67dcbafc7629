package models

import (
	"gorm.io/datatypes"
)

type UserRole string

const (
	UserRoleClient   UserRole = "CLIENT"
	UserRoleProvider UserRole = "PROVIDER"
	UserRoleAgent    UserRole = "AGENT"
	UserRoleAdmin    UserRole = "ADMIN"
)

type UserStatus string

const (
	UserStatusPending  UserStatus = "PENDING"
	UserStatusVerified UserStatus = "VERIFIED"
	UserStatusRejected UserStatus = "REJECTED"
)

// User is shared by all four roles; the profile fields below the role
// column are only meaningful for providers. Users are never hard-deleted.
type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`

	Phone        string         `json:"phone,omitempty"`
	Country      string         `json:"country,omitempty"`
	State        string         `json:"state,omitempty"`
	City         string         `json:"city,omitempty"`
	Neighborhood string         `json:"neighborhood,omitempty"`
	Address      string         `json:"address,omitempty"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	Experience   string         `json:"experience,omitempty"`
	HourlyRate   float64        `json:"hourlyRate,omitempty"`
	Availability string         `json:"availability,omitempty"`
	Bio          string         `json:"bio,omitempty"`
	IDType       string         `gorm:"column:id_type" json:"idType,omitempty"`

	// Supervising agent; nil for agents and admins themselves.
	AgentID *string `gorm:"type:uuid;index" json:"agentId,omitempty"`
}
