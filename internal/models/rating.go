package models

// Rating is left by one user about another after a job. Only the
// read-side average is served by this API.
type Rating struct {
	BaseModel
	RatedUserID string  `gorm:"type:uuid;not null;index" json:"ratedUserId"`
	RaterUserID string  `gorm:"type:uuid;not null" json:"raterUserId"`
	JobID       *string `gorm:"type:uuid" json:"jobId,omitempty"`
	Rating      int     `gorm:"not null" json:"rating"`
	Comment     string  `json:"comment,omitempty"`
}
