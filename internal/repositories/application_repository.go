package repositories

import (
	"errors"
	"strings"

	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and user")
)

type ApplicationRepository interface {
	Create(app *models.JobApplication) error
	ExistsByJobAndUser(jobID, userID string) (bool, error)
	ListByUser(userID string) ([]models.JobApplication, error)
	CountByUserAndStatus(userID string, status models.ApplicationStatus) (int64, error)
	CountAcceptedOnCompletedJobs(userID string) (int64, error)
	SumAcceptedRateOnCompletedJobs(userID string) (float64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create relies on the (job_id, user_id) unique index as the last line
// of defense against concurrent duplicate submissions; the service-level
// pre-check only exists for a friendlier error message.
func (r *ApplicationRepositoryImpl) Create(app *models.JobApplication) error {
	err := r.db.Create(app).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateApplication
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Postgres unique_violation surfaces as SQLSTATE 23505
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}

func (r *ApplicationRepositoryImpl) ExistsByJobAndUser(jobID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) ListByUser(userID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.
		Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) CountByUserAndStatus(userID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountAcceptedOnCompletedJobs(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Where("job_applications.user_id = ? AND job_applications.status = ? AND jobs.status = ?",
			userID, models.ApplicationStatusAccepted, models.JobStatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) SumAcceptedRateOnCompletedJobs(userID string) (float64, error) {
	var sum float64
	err := r.db.Model(&models.JobApplication{}).
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Where("job_applications.user_id = ? AND job_applications.status = ? AND jobs.status = ?",
			userID, models.ApplicationStatusAccepted, models.JobStatusCompleted).
		Select("COALESCE(SUM(job_applications.proposed_rate), 0)").
		Scan(&sum).Error
	return sum, err
}
