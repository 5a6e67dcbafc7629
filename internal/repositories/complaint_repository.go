package repositories

import (
	"errors"
	"time"

	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrComplaintNotFound = errors.New("complaint not found")

type ComplaintRepository interface {
	Create(complaint *models.Complaint) error
	FindSupervised(id, agentID string) (*models.Complaint, error)
	ListRecentByAgent(agentID string, limit int) ([]models.Complaint, error)
	CountByAgentAndStatus(agentID string, status models.ComplaintStatus) (int64, error)
	CountByAgentInRange(agentID string, from, to *time.Time, status models.ComplaintStatus) (int64, error)
	ResolveSupervised(complaintID, agentID string) error
	CountByStatus(status models.ComplaintStatus) (int64, error)
}

type ComplaintRepositoryImpl struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &ComplaintRepositoryImpl{db: db}
}

func (r *ComplaintRepositoryImpl) Create(complaint *models.Complaint) error {
	return r.db.Create(complaint).Error
}

func (r *ComplaintRepositoryImpl) FindSupervised(id, agentID string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.First(&complaint, "id = ? AND agent_id = ?", id, agentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

func (r *ComplaintRepositoryImpl) ListRecentByAgent(agentID string, limit int) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.
		Preload("User").
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&complaints).Error
	return complaints, err
}

func (r *ComplaintRepositoryImpl) CountByAgentAndStatus(agentID string, status models.ComplaintStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Complaint{}).
		Where("agent_id = ? AND status = ?", agentID, status).
		Count(&count).Error
	return count, err
}

// CountByAgentInRange counts supervised complaints created inside the
// date range; a zero-value bound leaves that side open. An empty status
// means all statuses.
func (r *ComplaintRepositoryImpl) CountByAgentInRange(agentID string, from, to *time.Time, status models.ComplaintStatus) (int64, error) {
	query := r.db.Model(&models.Complaint{}).Where("agent_id = ?", agentID)

	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// ResolveSupervised is scoped by agent ownership; resolving a complaint
// the agent does not supervise reports not-found.
func (r *ComplaintRepositoryImpl) ResolveSupervised(complaintID, agentID string) error {
	result := r.db.Model(&models.Complaint{}).
		Where("id = ? AND agent_id = ? AND status = ?", complaintID, agentID, models.ComplaintStatusOpen).
		Updates(map[string]interface{}{
			"status":     models.ComplaintStatusResolved,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrComplaintNotFound
	}
	return nil
}

func (r *ComplaintRepositoryImpl) CountByStatus(status models.ComplaintStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Complaint{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
