package repositories

import (
	"errors"
	"time"

	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	UpdateProfile(userID string, updates map[string]interface{}) error

	// Agent supervision
	FindLeastLoadedAgent() (*models.User, error)
	ListSupervised(agentID string, status models.UserStatus) ([]models.User, error)
	ListPendingSupervised(agentID string, limit int) ([]models.User, error)
	CountSupervisedByStatus(agentID string, status models.UserStatus) (int64, error)
	SetStatusSupervised(userID, agentID string, status models.UserStatus) error

	// Admin
	FindWithFilter(criteria UserFilter) ([]models.User, int64, error)
	CountByRole(role models.UserRole) (int64, error)
	CountByStatus(status models.UserStatus) (int64, error)
}

type UserFilter struct {
	Role     models.UserRole
	Status   models.UserStatus
	Search   string
	Page     int
	PageSize int
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return r.db.Create(user).Error
}

// UpdateProfile applies a partial update; fields absent from the map are
// left untouched.
func (r *UserRepositoryImpl) UpdateProfile(userID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindLeastLoadedAgent picks the agent supervising the fewest users, so
// sign-ups spread evenly across the verification team.
func (r *UserRepositoryImpl) FindLeastLoadedAgent() (*models.User, error) {
	var agent models.User
	err := r.db.
		Where("role = ?", models.UserRoleAgent).
		Order("(SELECT COUNT(*) FROM users u WHERE u.agent_id = users.id) ASC").
		First(&agent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &agent, nil
}

func (r *UserRepositoryImpl) ListSupervised(agentID string, status models.UserStatus) ([]models.User, error) {
	var users []models.User
	query := r.db.Where("agent_id = ?", agentID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) ListPendingSupervised(agentID string, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("agent_id = ? AND status = ?", agentID, models.UserStatusPending).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountSupervisedByStatus(agentID string, status models.UserStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("agent_id = ? AND status = ?", agentID, status).
		Count(&count).Error
	return count, err
}

// SetStatusSupervised is scoped by the supervising agent: an agent can
// only decide for users assigned to them. A miss is a not-found.
func (r *UserRepositoryImpl) SetStatusSupervised(userID, agentID string, status models.UserStatus) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND agent_id = ?", userID, agentID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindWithFilter(criteria UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page <= 0 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	var users []models.User
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error

	return users, total, err
}

func (r *UserRepositoryImpl) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountByStatus(status models.UserStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
