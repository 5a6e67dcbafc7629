package models

// Service is a provider's offered service. Every mutation is scoped by
// (ID, UserID) so one provider cannot touch another's rows.
type Service struct {
	BaseModel
	UserID       string  `gorm:"type:uuid;not null;index" json:"userId"`
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `json:"description"`
	Rate         float64 `json:"rate"`
	Availability string  `json:"availability"`
}
