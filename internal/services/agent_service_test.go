package services

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEmailProvider struct {
	mu   sync.Mutex
	sent []string
}

func (p *recordingEmailProvider) Send(to, subject, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, to)
	return nil
}

func (p *recordingEmailProvider) sentTo() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.sent...)
}

type agentFixture struct {
	svc           AgentService
	userRepo      *fakeUserRepo
	complaintRepo *fakeComplaintRepo
	jobRepo       *fakeJobRepo
	analytics     *fakeAnalyticsRepo
	emails        *recordingEmailProvider
}

func newAgentFixture() *agentFixture {
	userRepo := newFakeUserRepo()
	complaintRepo := newFakeComplaintRepo()
	jobRepo := newFakeJobRepo()
	analytics := newFakeAnalyticsRepo()
	emails := &recordingEmailProvider{}
	return &agentFixture{
		svc:           NewAgentService(userRepo, complaintRepo, jobRepo, analytics, emails),
		userRepo:      userRepo,
		complaintRepo: complaintRepo,
		jobRepo:       jobRepo,
		analytics:     analytics,
		emails:        emails,
	}
}

func TestSetUserStatusVerifies(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})
	user := f.userRepo.add(&models.User{
		Role: models.UserRoleProvider, Email: "pending@test.com",
		Status: models.UserStatusPending, AgentID: &agent.ID, FirstName: "Pat",
	})

	resp, err := f.svc.SetUserStatus(user.ID, agent.ID, &dto.VerifyUserRequest{Status: "VERIFIED"})
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusVerified, resp.Status)

	stored, err := f.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusVerified, stored.Status)

	// Decision email goes out asynchronously.
	require.Eventually(t, func() bool {
		return len(f.emails.sentTo()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "pending@test.com", f.emails.sentTo()[0])
}

func TestSetUserStatusNotSupervisedIsNotFound(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})
	otherAgent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "other@test.com"})
	user := f.userRepo.add(&models.User{
		Role: models.UserRoleClient, Email: "u@test.com",
		Status: models.UserStatusPending, AgentID: &otherAgent.ID,
	})

	_, err := f.svc.SetUserStatus(user.ID, agent.ID, &dto.VerifyUserRequest{Status: "REJECTED"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestSetUserStatusAlreadyDecided(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})
	user := f.userRepo.add(&models.User{
		Role: models.UserRoleClient, Email: "u@test.com",
		Status: models.UserStatusVerified, AgentID: &agent.ID,
	})

	_, err := f.svc.SetUserStatus(user.ID, agent.ID, &dto.VerifyUserRequest{Status: "REJECTED"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestResolveComplaint(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})
	complaint := f.complaintRepo.add(&models.Complaint{
		Title: "Overcharged", AgentID: agent.ID, Status: models.ComplaintStatusOpen,
	})

	resp, err := f.svc.ResolveComplaint(complaint.ID, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintStatusResolved, resp.Status)

	// Resolving twice is a plain 400, not a 404.
	_, err = f.svc.ResolveComplaint(complaint.ID, agent.ID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestResolveComplaintOfOtherAgentIsNotFound(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})
	other := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "other@test.com"})
	complaint := f.complaintRepo.add(&models.Complaint{
		Title: "Not yours", AgentID: other.ID, Status: models.ComplaintStatusOpen,
	})

	_, err := f.svc.ResolveComplaint(complaint.ID, agent.ID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestAgentStats(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})

	f.complaintRepo.add(&models.Complaint{AgentID: agent.ID, Status: models.ComplaintStatusOpen})
	f.complaintRepo.add(&models.Complaint{AgentID: agent.ID, Status: models.ComplaintStatusOpen})
	f.complaintRepo.add(&models.Complaint{AgentID: agent.ID, Status: models.ComplaintStatusResolved})
	f.userRepo.add(&models.User{Role: models.UserRoleClient, Email: "v@test.com", Status: models.UserStatusVerified, AgentID: &agent.ID})
	f.analytics.ratings[agent.ID] = []int{5, 4, 5}

	stats, err := f.svc.GetStats(agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.PendingComplaints)
	assert.Equal(t, int64(1), stats.ResolvedComplaints)
	assert.Equal(t, int64(1), stats.UsersVerified)
	assert.InDelta(t, 4.67, stats.CaseloadRating, 0.01)
}

func TestAgentStatsZeroState(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})

	stats, err := f.svc.GetStats(agent.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.PendingComplaints)
	assert.Zero(t, stats.ResolvedComplaints)
	assert.Zero(t, stats.UsersVerified)
	assert.Zero(t, stats.CaseloadRating)
}

func TestRecentComplaintsFormatsUserName(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})

	complainant := &models.User{FirstName: "Joana", LastName: "Costa"}
	f.complaintRepo.add(&models.Complaint{
		Title: "Late arrival", AgentID: agent.ID,
		Status: models.ComplaintStatusOpen, User: complainant,
	})
	f.complaintRepo.add(&models.Complaint{
		Title: "No-show", AgentID: agent.ID, Status: models.ComplaintStatusOpen,
	})

	out, err := f.svc.RecentComplaints(agent.ID)
	require.NoError(t, err)
	require.Len(t, out, 2)

	names := map[string]bool{}
	for _, c := range out {
		names[c.User] = true
	}
	assert.True(t, names["Joana Costa"])
	assert.True(t, names["Unknown"])
}

func TestRecentComplaintsLimit(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})
	for i := 0; i < 8; i++ {
		f.complaintRepo.add(&models.Complaint{AgentID: agent.ID, Status: models.ComplaintStatusOpen})
	}

	out, err := f.svc.RecentComplaints(agent.ID)
	require.NoError(t, err)
	assert.Len(t, out, 5)
}

func TestRecentComplaintsDashboardShape(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})

	f.complaintRepo.add(&models.Complaint{
		BaseModel: models.BaseModel{CreatedAt: time.Date(2026, 8, 12, 15, 4, 5, 0, time.UTC)},
		Title:     "Damaged fence", Category: "Repair",
		Priority: models.ComplaintPriorityHigh,
		Status:   models.ComplaintStatusOpen,
		AgentID:  agent.ID,
	})

	out, err := f.svc.RecentComplaints(agent.ID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Repair", out[0].Category)
	assert.Equal(t, "2026-08-12", out[0].CreatedAt)
}

func TestPendingVerificationsFormatting(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})

	withDoc := f.userRepo.add(&models.User{
		BaseModel: models.BaseModel{CreatedAt: time.Date(2026, 8, 3, 9, 30, 0, 0, time.UTC)},
		Role:      models.UserRoleProvider, Email: "ana@test.com",
		Status: models.UserStatusPending, AgentID: &agent.ID,
		FirstName: "Ana", LastName: "Lima", IDType: "PASSPORT",
	})
	noDoc := f.userRepo.add(&models.User{
		Role: models.UserRoleClient, Email: "caio@test.com",
		Status: models.UserStatusPending, AgentID: &agent.ID,
		FirstName: "Caio", LastName: "Souza",
	})

	out, err := f.svc.PendingVerifications(agent.ID)
	require.NoError(t, err)
	require.Len(t, out, 2)

	byID := map[string]dto.VerificationSummary{}
	for _, v := range out {
		byID[v.ID] = v
	}
	assert.Equal(t, "Ana Lima", byID[withDoc.ID].User)
	assert.Equal(t, "PASSPORT", byID[withDoc.ID].Type)
	assert.Equal(t, "2026-08-03", byID[withDoc.ID].SubmittedAt)
	assert.Equal(t, "ID_VERIFICATION", byID[noDoc.ID].Type)
	assert.Equal(t, 1, byID[noDoc.ID].Documents)
}

func TestReportInvalidDate(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})

	_, err := f.svc.GetReport(agent.ID, &dto.ReportRequest{StartDate: "29-08-2026"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestReportCountsWindow(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})

	old := f.complaintRepo.add(&models.Complaint{AgentID: agent.ID, Status: models.ComplaintStatusResolved})
	old.CreatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := f.complaintRepo.add(&models.Complaint{AgentID: agent.ID, Status: models.ComplaintStatusOpen})
	recent.CreatedAt = time.Now()

	report, err := f.svc.GetReport(agent.ID, &dto.ReportRequest{StartDate: time.Now().AddDate(0, 0, -7).Format("2006-01-02")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.ComplaintsCount)
	assert.Equal(t, int64(0), report.ResolvedCount)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestReportStatusFilter(t *testing.T) {
	f := newAgentFixture()
	agent := f.userRepo.add(&models.User{Role: models.UserRoleAgent, Email: "agent@test.com"})

	f.complaintRepo.add(&models.Complaint{AgentID: agent.ID, Status: models.ComplaintStatusOpen})
	f.complaintRepo.add(&models.Complaint{AgentID: agent.ID, Status: models.ComplaintStatusResolved})

	all, err := f.svc.GetReport(agent.ID, &dto.ReportRequest{StatusFilter: "ALL"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.ComplaintsCount)
	assert.Equal(t, int64(1), all.ResolvedCount)

	open, err := f.svc.GetReport(agent.ID, &dto.ReportRequest{StatusFilter: "OPEN"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), open.ComplaintsCount)
}
