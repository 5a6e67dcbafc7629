package services

import (
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

type AdminService interface {
	ListUsers(query *dto.AdminUsersQuery) (*dto.AdminUserListResponse, error)
	GetPlatformStats() (*dto.PlatformStatsResponse, error)
}

type AdminServiceImpl struct {
	userRepo      repositories.UserRepository
	jobRepo       repositories.JobRepository
	complaintRepo repositories.ComplaintRepository
	analyticsRepo repositories.AnalyticsRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	complaintRepo repositories.ComplaintRepository,
	analyticsRepo repositories.AnalyticsRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:      userRepo,
		jobRepo:       jobRepo,
		complaintRepo: complaintRepo,
		analyticsRepo: analyticsRepo,
	}
}

func (s *AdminServiceImpl) ListUsers(query *dto.AdminUsersQuery) (*dto.AdminUserListResponse, error) {
	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:     models.UserRole(query.Role),
		Status:   models.UserStatus(query.Status),
		Search:   query.Search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.AdminUserListResponse{
		Users:    make([]dto.AdminUserResponse, 0, len(users)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewAdminUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *AdminServiceImpl) GetPlatformStats() (*dto.PlatformStatsResponse, error) {
	stats := &dto.PlatformStatsResponse{}

	var g errgroup.Group

	g.Go(func() error {
		counts, err := s.analyticsRepo.CountUsersByRole()
		if err != nil {
			return err
		}
		stats.TotalClients = counts[models.UserRoleClient]
		stats.TotalProviders = counts[models.UserRoleProvider]
		stats.TotalAgents = counts[models.UserRoleAgent]
		for _, count := range counts {
			stats.TotalUsers += count
		}
		return nil
	})
	g.Go(func() error {
		count, err := s.jobRepo.CountByStatus(models.JobStatusOpen)
		stats.OpenJobs = count
		return err
	})
	g.Go(func() error {
		count, err := s.jobRepo.CountByStatus(models.JobStatusCompleted)
		stats.CompletedJobs = count
		return err
	})
	g.Go(func() error {
		count, err := s.complaintRepo.CountByStatus(models.ComplaintStatusOpen)
		stats.OpenComplaints = count
		return err
	})
	g.Go(func() error {
		count, err := s.userRepo.CountByStatus(models.UserStatusPending)
		stats.PendingUsers = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}
