package models

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// JobApplication links a provider to a job. The (JobID, UserID) unique
// index backs the one-application-per-job invariant; the service layer
// pre-checks it as well for a friendlier error.
type JobApplication struct {
	BaseModel
	JobID        string            `gorm:"type:uuid;not null;uniqueIndex:idx_application_job_user" json:"jobId"`
	UserID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_application_job_user" json:"userId"`
	Message      string            `json:"message"`
	ProposedRate *float64          `json:"proposedRate,omitempty"`
	Status       ApplicationStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`

	// Relations
	Job *Job `gorm:"foreignKey:JobID" json:"-"`
}
