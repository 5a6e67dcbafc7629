package repositories

import (
	"errors"

	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	ListOpen(filter JobFilter) ([]models.Job, int64, error)
	ListByAgent(agentID string) ([]models.Job, error)
	CountByStatus(status models.JobStatus) (int64, error)
}

type JobFilter struct {
	Location string
	Category string
	Country  string
	Page     int
	PageSize int
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// ListOpen serves the public board: OPEN jobs only, newest first, with
// case-insensitive contains filters and offset pagination.
func (r *JobRepositoryImpl) ListOpen(filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{}).Where("status = ?", models.JobStatusOpen)

	if filter.Location != "" {
		pattern := "%" + filter.Location + "%"
		query = query.Where("city ILIKE ? OR state ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category ILIKE ?", "%"+filter.Category+"%")
	}
	if filter.Country != "" {
		query = query.Where("country ILIKE ?", "%"+filter.Country+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	var jobs []models.Job
	err := query.
		Preload("Creator").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&jobs).Error

	return jobs, total, err
}

func (r *JobRepositoryImpl) ListByAgent(agentID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Preload("Creator").
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountByStatus(status models.JobStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
