package services

import (
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"
)

type ComplaintService interface {
	Create(userID string, req *dto.CreateComplaintRequest) (*dto.ComplaintResponse, error)
}

type ComplaintServiceImpl struct {
	complaintRepo repositories.ComplaintRepository
	userRepo      repositories.UserRepository
}

func NewComplaintService(
	complaintRepo repositories.ComplaintRepository,
	userRepo repositories.UserRepository,
) ComplaintService {
	return &ComplaintServiceImpl{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
	}
}

// Create files a complaint and routes it to the caller's supervising
// agent. Accounts without an agent (agents themselves, legacy rows)
// cannot file one.
func (s *ComplaintServiceImpl) Create(userID string, req *dto.CreateComplaintRequest) (*dto.ComplaintResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.AgentID == nil {
		return nil, apperrors.ErrNoAssignedAgent
	}

	priority := models.ComplaintPriorityMedium
	if req.Priority != "" {
		priority = models.ComplaintPriority(req.Priority)
	}

	complaint := &models.Complaint{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      models.ComplaintStatusOpen,
		AgentID:     *user.AgentID,
		UserID:      userID,
	}

	if err := s.complaintRepo.Create(complaint); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewComplaintResponse(complaint)
	return &resp, nil
}
