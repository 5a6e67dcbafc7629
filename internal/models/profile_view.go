package models

// ProfileView records one view of a provider's profile; the provider
// dashboard counts the current calendar month.
type ProfileView struct {
	BaseModel
	UserID   string `gorm:"type:uuid;not null;index" json:"userId"`
	ViewerID string `gorm:"type:uuid" json:"viewerId"`
}
