package models

type ComplaintStatus string

const (
	ComplaintStatusOpen     ComplaintStatus = "OPEN"
	ComplaintStatusResolved ComplaintStatus = "RESOLVED"
)

type ComplaintPriority string

const (
	ComplaintPriorityLow    ComplaintPriority = "LOW"
	ComplaintPriorityMedium ComplaintPriority = "MEDIUM"
	ComplaintPriorityHigh   ComplaintPriority = "HIGH"
)

// Complaint is filed by a client or provider and routed to the agent
// supervising the complainant.
type Complaint struct {
	BaseModel
	Title       string            `gorm:"not null" json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Priority    ComplaintPriority `gorm:"type:varchar(20);default:'MEDIUM'" json:"priority"`
	Status      ComplaintStatus   `gorm:"type:varchar(20);default:'OPEN';index" json:"status"`
	AgentID     string            `gorm:"type:uuid;not null;index" json:"agentId"`
	UserID      string            `gorm:"type:uuid;not null;index" json:"userId"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
