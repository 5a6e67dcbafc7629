package services

import (
	"encoding/json"
	"time"

	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

type ProviderService interface {
	CreateService(userID string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	ListServices(userID string) ([]dto.ServiceResponse, error)
	UpdateService(id, userID string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(id, userID string) error

	ListApplications(userID string) ([]dto.ApplicationResponse, error)

	GetProfile(userID string) (*dto.ProfileResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)

	GetStats(userID string) (*dto.ProviderStatsResponse, error)
}

type ProviderServiceImpl struct {
	serviceRepo   repositories.ServiceRepository
	appRepo       repositories.ApplicationRepository
	userRepo      repositories.UserRepository
	analyticsRepo repositories.AnalyticsRepository
}

func NewProviderService(
	serviceRepo repositories.ServiceRepository,
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	analyticsRepo repositories.AnalyticsRepository,
) ProviderService {
	return &ProviderServiceImpl{
		serviceRepo:   serviceRepo,
		appRepo:       appRepo,
		userRepo:      userRepo,
		analyticsRepo: analyticsRepo,
	}
}

// --- Service listings ---

func (s *ProviderServiceImpl) CreateService(userID string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	service := &models.Service{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Rate:         req.Rate,
		Availability: req.Availability,
	}
	if err := s.serviceRepo.Create(service); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewServiceResponse(service)
	return &resp, nil
}

func (s *ProviderServiceImpl) ListServices(userID string) ([]dto.ServiceResponse, error) {
	services, err := s.serviceRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, dto.NewServiceResponse(&services[i]))
	}
	return out, nil
}

func (s *ProviderServiceImpl) UpdateService(id, userID string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Rate != nil {
		updates["rate"] = *req.Rate
	}
	if req.Availability != nil {
		updates["availability"] = *req.Availability
	}

	if err := s.serviceRepo.UpdateOwned(id, userID, updates); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	service, err := s.serviceRepo.FindOwned(id, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewServiceResponse(service)
	return &resp, nil
}

func (s *ProviderServiceImpl) DeleteService(id, userID string) error {
	if err := s.serviceRepo.DeleteOwned(id, userID); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Applications ---

func (s *ProviderServiceImpl) ListApplications(userID string) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewApplicationResponse(&apps[i]))
	}
	return out, nil
}

// --- Profile ---

func (s *ProviderServiceImpl) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildProfileResponse(user), nil
}

func (s *ProviderServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Neighborhood != nil {
		updates["neighborhood"] = *req.Neighborhood
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Skills != nil {
		raw, err := json.Marshal(*req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		updates["skills"] = datatypes.JSON(raw)
	}
	if req.Experience != nil {
		updates["experience"] = *req.Experience
	}
	if req.HourlyRate != nil {
		updates["hourly_rate"] = *req.HourlyRate
	}
	if req.Availability != nil {
		updates["availability"] = *req.Availability
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	if err := s.userRepo.UpdateProfile(userID, updates); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetProfile(userID)
}

func buildProfileResponse(user *models.User) *dto.ProfileResponse {
	skills := []string{}
	if len(user.Skills) > 0 {
		// Malformed stored JSON degrades to an empty list.
		_ = json.Unmarshal(user.Skills, &skills)
	}

	return &dto.ProfileResponse{
		ID:           user.ID,
		Email:        user.Email,
		Role:         user.Role,
		Status:       user.Status,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Phone:        user.Phone,
		Country:      user.Country,
		State:        user.State,
		City:         user.City,
		Neighborhood: user.Neighborhood,
		Address:      user.Address,
		Skills:       skills,
		Experience:   user.Experience,
		HourlyRate:   user.HourlyRate,
		Availability: user.Availability,
		Bio:          user.Bio,
		CreatedAt:    user.CreatedAt,
	}
}

// --- Stats ---

// GetStats fans the five aggregates out concurrently; each one is an
// independent query.
func (s *ProviderServiceImpl) GetStats(userID string) (*dto.ProviderStatsResponse, error) {
	stats := &dto.ProviderStatsResponse{}

	var g errgroup.Group

	g.Go(func() error {
		count, err := s.appRepo.CountByUserAndStatus(userID, models.ApplicationStatusPending)
		stats.ActiveApplications = count
		return err
	})
	g.Go(func() error {
		count, err := s.appRepo.CountAcceptedOnCompletedJobs(userID)
		stats.CompletedJobs = count
		return err
	})
	g.Go(func() error {
		sum, err := s.appRepo.SumAcceptedRateOnCompletedJobs(userID)
		stats.TotalEarnings = sum
		return err
	})
	g.Go(func() error {
		avg, err := s.analyticsRepo.AverageRating(userID)
		stats.Rating = avg
		return err
	})
	g.Go(func() error {
		// Views reset on the 1st: the dashboard shows the current
		// calendar month, not a rolling window.
		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		count, err := s.analyticsRepo.CountProfileViewsSince(userID, monthStart)
		stats.ProfileViews = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}
