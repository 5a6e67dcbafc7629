package repositories

import (
	"time"

	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

// AnalyticsRepository serves the read-only aggregates behind the stats
// endpoints: rating averages, profile view counts, platform totals.
type AnalyticsRepository interface {
	AverageRating(userID string) (float64, error)
	CountProfileViewsSince(userID string, since time.Time) (int64, error)
	CountUsersByRole() (map[models.UserRole]int64, error)
}

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

// AverageRating returns 0 when the user has no ratings yet; the stats
// endpoints surface that zero as "not yet rated" rather than inventing
// a number.
func (r *AnalyticsRepositoryImpl) AverageRating(userID string) (float64, error) {
	var avg float64
	err := r.db.Model(&models.Rating{}).
		Where("rated_user_id = ?", userID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *AnalyticsRepositoryImpl) CountProfileViewsSince(userID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProfileView{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepositoryImpl) CountUsersByRole() (map[models.UserRole]int64, error) {
	type roleCount struct {
		Role  models.UserRole
		Count int64
	}

	var rows []roleCount
	err := r.db.Model(&models.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.UserRole]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}
