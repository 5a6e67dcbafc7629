package services

import (
	"time"

	"jobmarket_backend/internal/email"
	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

const recentListLimit = 5

type AgentService interface {
	GetProfile(agentID string) (*dto.ProfileResponse, error)
	GetStats(agentID string) (*dto.AgentStatsResponse, error)
	RecentComplaints(agentID string) ([]dto.ComplaintSummary, error)
	PendingVerifications(agentID string) ([]dto.VerificationSummary, error)
	GetReport(agentID string, req *dto.ReportRequest) (*dto.ReportResponse, error)

	ListJobs(agentID string) ([]dto.JobResponse, error)
	CreateJob(agentID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)

	ListUsers(agentID string, query *dto.SupervisedUsersQuery) ([]dto.SupervisedUserResponse, error)
	SetUserStatus(userID, agentID string, req *dto.VerifyUserRequest) (*dto.SupervisedUserResponse, error)
	ResolveComplaint(complaintID, agentID string) (*dto.ComplaintResponse, error)
}

type AgentServiceImpl struct {
	userRepo      repositories.UserRepository
	complaintRepo repositories.ComplaintRepository
	jobRepo       repositories.JobRepository
	analyticsRepo repositories.AnalyticsRepository
	emailProvider email.Provider
}

func NewAgentService(
	userRepo repositories.UserRepository,
	complaintRepo repositories.ComplaintRepository,
	jobRepo repositories.JobRepository,
	analyticsRepo repositories.AnalyticsRepository,
	emailProvider email.Provider,
) AgentService {
	return &AgentServiceImpl{
		userRepo:      userRepo,
		complaintRepo: complaintRepo,
		jobRepo:       jobRepo,
		analyticsRepo: analyticsRepo,
		emailProvider: emailProvider,
	}
}

func (s *AgentServiceImpl) GetProfile(agentID string) (*dto.ProfileResponse, error) {
	agent, err := s.userRepo.FindByID(agentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildProfileResponse(agent), nil
}

// GetStats aggregates the agent dashboard counters concurrently. The
// caseload rating is the average of ratings left for the agent; 0 means
// not yet rated.
func (s *AgentServiceImpl) GetStats(agentID string) (*dto.AgentStatsResponse, error) {
	stats := &dto.AgentStatsResponse{}

	var g errgroup.Group

	g.Go(func() error {
		count, err := s.complaintRepo.CountByAgentAndStatus(agentID, models.ComplaintStatusOpen)
		stats.PendingComplaints = count
		return err
	})
	g.Go(func() error {
		count, err := s.complaintRepo.CountByAgentAndStatus(agentID, models.ComplaintStatusResolved)
		stats.ResolvedComplaints = count
		return err
	})
	g.Go(func() error {
		count, err := s.userRepo.CountSupervisedByStatus(agentID, models.UserStatusVerified)
		stats.UsersVerified = count
		return err
	})
	g.Go(func() error {
		avg, err := s.analyticsRepo.AverageRating(agentID)
		stats.CaseloadRating = avg
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *AgentServiceImpl) RecentComplaints(agentID string) ([]dto.ComplaintSummary, error) {
	complaints, err := s.complaintRepo.ListRecentByAgent(agentID, recentListLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.ComplaintSummary, 0, len(complaints))
	for i := range complaints {
		out = append(out, dto.NewComplaintSummary(&complaints[i]))
	}
	return out, nil
}

func (s *AgentServiceImpl) PendingVerifications(agentID string) ([]dto.VerificationSummary, error) {
	users, err := s.userRepo.ListPendingSupervised(agentID, recentListLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.VerificationSummary, 0, len(users))
	for i := range users {
		out = append(out, dto.NewVerificationSummary(&users[i]))
	}
	return out, nil
}

// GetReport counts supervised complaints inside an optional date
// window. An empty bound leaves that side of the window open; "ALL"
// (or no filter) counts every status.
func (s *AgentServiceImpl) GetReport(agentID string, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	var from, to *time.Time
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid startDate")
		}
		from = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid endDate")
		}
		// Inclusive end of day.
		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	statusFilter := models.ComplaintStatus("")
	if req.StatusFilter != "" && req.StatusFilter != "ALL" {
		statusFilter = models.ComplaintStatus(req.StatusFilter)
	}

	report := &dto.ReportResponse{GeneratedAt: time.Now()}

	var g errgroup.Group

	g.Go(func() error {
		count, err := s.complaintRepo.CountByAgentInRange(agentID, from, to, statusFilter)
		report.ComplaintsCount = count
		return err
	})
	g.Go(func() error {
		count, err := s.complaintRepo.CountByAgentInRange(agentID, from, to, models.ComplaintStatusResolved)
		report.ResolvedCount = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return report, nil
}

// --- Jobs ---

func (s *AgentServiceImpl) ListJobs(agentID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.ListByAgent(agentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, dto.NewJobResponse(&jobs[i]))
	}
	return out, nil
}

// CreateJob lets an agent post a job on behalf of the marketplace; the
// agent supervises it directly.
func (s *AgentServiceImpl) CreateJob(agentID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
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
		CreatedByID: &agentID,
		AgentID:     &agentID,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// --- Supervised users ---

func (s *AgentServiceImpl) ListUsers(agentID string, query *dto.SupervisedUsersQuery) ([]dto.SupervisedUserResponse, error) {
	users, err := s.userRepo.ListSupervised(agentID, models.UserStatus(query.Status))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.SupervisedUserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewSupervisedUserResponse(&users[i]))
	}
	return out, nil
}

// SetUserStatus records the agent's verification decision. Only users
// assigned to the agent are visible; anyone else is a not-found. The
// decision email goes out asynchronously.
func (s *AgentServiceImpl) SetUserStatus(userID, agentID string, req *dto.VerifyUserRequest) (*dto.SupervisedUserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.AgentID == nil || *user.AgentID != agentID {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}
	if user.Status != models.UserStatusPending {
		return nil, apperrors.ErrUserNotPending
	}

	status := models.UserStatus(req.Status)
	if err := s.userRepo.SetStatusSupervised(userID, agentID, status); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	user.Status = status

	s.sendDecisionEmail(user, req.Reason)

	resp := dto.NewSupervisedUserResponse(user)
	return &resp, nil
}

func (s *AgentServiceImpl) sendDecisionEmail(user *models.User, reason string) {
	if s.emailProvider == nil {
		return
	}

	var subject, body string
	if user.Status == models.UserStatusVerified {
		subject, body = email.VerificationApprovedBody(user.FirstName)
	} else {
		subject, body = email.VerificationRejectedBody(user.FirstName, reason)
	}

	to := user.Email
	go func() {
		if err := s.emailProvider.Send(to, subject, body); err != nil {
			logger.Error("failed to send verification decision email", "error", err, "to", to)
		}
	}()
}

// --- Complaints ---

func (s *AgentServiceImpl) ResolveComplaint(complaintID, agentID string) (*dto.ComplaintResponse, error) {
	complaint, err := s.complaintRepo.FindSupervised(complaintID, agentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrComplaintNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if complaint.Status == models.ComplaintStatusResolved {
		return nil, apperrors.ErrComplaintResolved
	}

	if err := s.complaintRepo.ResolveSupervised(complaintID, agentID); err != nil {
		if apperrors.Is(err, repositories.ErrComplaintNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	complaint.Status = models.ComplaintStatusResolved

	resp := dto.NewComplaintResponse(complaint)
	return &resp, nil
}
