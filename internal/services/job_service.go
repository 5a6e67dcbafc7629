package services

import (
	"strconv"

	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"
)

type JobService interface {
	ListOpen(query *dto.JobListQuery) (*dto.JobListResponse, error)
	Create(creatorID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Apply(jobID, userID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
}

type JobServiceImpl struct {
	jobRepo  repositories.JobRepository
	appRepo  repositories.ApplicationRepository
	userRepo repositories.UserRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		userRepo: userRepo,
	}
}

// coerceNumber accepts JSON numbers and numeric strings; everything else
// coerces to zero. The dashboard forms submit budgets as strings.
func coerceNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func (s *JobServiceImpl) ListOpen(query *dto.JobListQuery) (*dto.JobListResponse, error) {
	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	jobs, total, err := s.jobRepo.ListOpen(repositories.JobFilter{
		Location: query.Location,
		Category: query.Category,
		Country:  query.Country,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.JobListResponse{
		Jobs:     make([]dto.JobResponse, 0, len(jobs)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Pages:    int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, dto.NewJobResponse(&jobs[i]))
	}
	return resp, nil
}

func (s *JobServiceImpl) Create(creatorID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	creator, err := s.userRepo.FindByID(creatorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Budget:      coerceNumber(req.Budget),
		Country:     req.Country,
		State:       req.State,
		City:        req.City,
		Urgency:     models.JobUrgency(req.Urgency),
		Status:      models.JobStatusOpen,
		CreatedByID: &creator.ID,
		// New jobs inherit the poster's supervising agent for oversight.
		AgentID: creator.AgentID,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.Creator = creator
	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// Apply submits a provider's application. An absent or closed job and a
// duplicate application are distinct failures: the first is a 404, the
// second a plain 400 the form can surface inline.
func (s *JobServiceImpl) Apply(jobID, userID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobClosed
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobClosed
	}

	exists, err := s.appRepo.ExistsByJobAndUser(jobID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.JobApplication{
		JobID:   jobID,
		UserID:  userID,
		Message: req.Message,
		Status:  models.ApplicationStatusPending,
	}
	if req.ProposedRate != nil {
		rate := coerceNumber(req.ProposedRate)
		app.ProposedRate = &rate
	}

	if err := s.appRepo.Create(app); err != nil {
		// Concurrent submission lost the race to the unique index.
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}
