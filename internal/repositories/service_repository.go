package repositories

import (
	"errors"
	"time"

	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	Create(service *models.Service) error
	ListByUser(userID string) ([]models.Service, error)
	FindOwned(id, userID string) (*models.Service, error)
	UpdateOwned(id, userID string, updates map[string]interface{}) error
	DeleteOwned(id, userID string) error
}

type ServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *ServiceRepositoryImpl) ListByUser(userID string) ([]models.Service, error) {
	var services []models.Service
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) FindOwned(id, userID string) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

// UpdateOwned applies a partial update scoped by (id, user_id); a row
// outside the caller's ownership is reported as not-found.
func (r *ServiceRepositoryImpl) UpdateOwned(id, userID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.Service{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) DeleteOwned(id, userID string) error {
	result := r.db.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
