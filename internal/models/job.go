package models

type JobStatus string

const (
	JobStatusOpen       JobStatus = "OPEN"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
)

type JobUrgency string

const (
	JobUrgencyLow    JobUrgency = "LOW"
	JobUrgencyNormal JobUrgency = "NORMAL"
	JobUrgencyHigh   JobUrgency = "HIGH"
	JobUrgencyUrgent JobUrgency = "URGENT"
)

// Job is owned either by the client who posted it (CreatedByID) or by
// the agent who posted it on a client's behalf (AgentID).
type Job struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Category    string     `gorm:"index" json:"category"`
	Budget      float64    `json:"budget"`
	Country     string     `gorm:"index" json:"country"`
	State       string     `json:"state,omitempty"`
	City        string     `json:"city,omitempty"`
	Urgency     JobUrgency `gorm:"type:varchar(20);default:'NORMAL'" json:"urgency"`
	Status      JobStatus  `gorm:"type:varchar(20);default:'OPEN';index" json:"status"`
	CreatedByID *string    `gorm:"type:uuid;index" json:"createdById,omitempty"`
	AgentID     *string    `gorm:"type:uuid;index" json:"agentId,omitempty"`

	// Relations
	Creator *User `gorm:"foreignKey:CreatedByID" json:"-"`
}
