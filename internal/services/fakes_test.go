package services

import (
	"sort"
	"strings"
	"time"

	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the semantics the GORM
// implementations promise: ownership misses are not-found, partial
// updates touch only listed columns.

// --- users ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, err := r.FindByEmail(user.Email); err == nil {
		return repositories.ErrUserAlreadyExists
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) UpdateProfile(userID string, updates map[string]interface{}) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	for column, value := range updates {
		switch column {
		case "first_name":
			user.FirstName = value.(string)
		case "last_name":
			user.LastName = value.(string)
		case "phone":
			user.Phone = value.(string)
		case "city":
			user.City = value.(string)
		case "bio":
			user.Bio = value.(string)
		case "hourly_rate":
			user.HourlyRate = value.(float64)
		}
	}
	return nil
}

func (r *fakeUserRepo) FindLeastLoadedAgent() (*models.User, error) {
	var agents []*models.User
	for _, user := range r.users {
		if user.Role == models.UserRoleAgent {
			agents = append(agents, user)
		}
	}
	if len(agents) == 0 {
		return nil, repositories.ErrUserNotFound
	}
	load := func(agentID string) int {
		n := 0
		for _, u := range r.users {
			if u.AgentID != nil && *u.AgentID == agentID {
				n++
			}
		}
		return n
	}
	sort.Slice(agents, func(i, j int) bool {
		return load(agents[i].ID) < load(agents[j].ID)
	})
	copied := *agents[0]
	return &copied, nil
}

func (r *fakeUserRepo) ListSupervised(agentID string, status models.UserStatus) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		if user.AgentID == nil || *user.AgentID != agentID {
			continue
		}
		if status != "" && user.Status != status {
			continue
		}
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) ListPendingSupervised(agentID string, limit int) ([]models.User, error) {
	users, _ := r.ListSupervised(agentID, models.UserStatusPending)
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r *fakeUserRepo) CountSupervisedByStatus(agentID string, status models.UserStatus) (int64, error) {
	users, _ := r.ListSupervised(agentID, status)
	return int64(len(users)), nil
}

func (r *fakeUserRepo) SetStatusSupervised(userID, agentID string, status models.UserStatus) error {
	user, ok := r.users[userID]
	if !ok || user.AgentID == nil || *user.AgentID != agentID {
		return repositories.ErrUserNotFound
	}
	user.Status = status
	return nil
}

func (r *fakeUserRepo) FindWithFilter(criteria repositories.UserFilter) ([]models.User, int64, error) {
	var out []models.User
	for _, user := range r.users {
		if criteria.Role != "" && user.Role != criteria.Role {
			continue
		}
		if criteria.Status != "" && user.Status != criteria.Status {
			continue
		}
		if criteria.Search != "" {
			needle := strings.ToLower(criteria.Search)
			haystack := strings.ToLower(user.Email + " " + user.FirstName + " " + user.LastName)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, *user)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	var n int64
	for _, user := range r.users {
		if user.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountByStatus(status models.UserStatus) (int64, error) {
	var n int64
	for _, user := range r.users {
		if user.Status == status {
			n++
		}
	}
	return n, nil
}

// --- jobs ---

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) add(job *models.Job) *models.Job {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	r.jobs[job.ID] = job
	return job
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.add(job)
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) ListOpen(filter repositories.JobFilter) ([]models.Job, int64, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if job.Status != models.JobStatusOpen {
			continue
		}
		if filter.Category != "" && !strings.Contains(strings.ToLower(job.Category), strings.ToLower(filter.Category)) {
			continue
		}
		out = append(out, *job)
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) ListByAgent(agentID string) ([]models.Job, error) {
	var out []models.Job
	for _, job := range r.jobs {
		if job.AgentID != nil && *job.AgentID == agentID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) CountByStatus(status models.JobStatus) (int64, error) {
	var n int64
	for _, job := range r.jobs {
		if job.Status == status {
			n++
		}
	}
	return n, nil
}

// --- applications ---

type fakeApplicationRepo struct {
	apps map[string]*models.JobApplication
	jobs *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps: make(map[string]*models.JobApplication),
		jobs: jobs,
	}
}

func (r *fakeApplicationRepo) Create(app *models.JobApplication) error {
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.UserID == app.UserID {
			return repositories.ErrDuplicateApplication
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	r.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) ExistsByJobAndUser(jobID, userID string) (bool, error) {
	for _, app := range r.apps {
		if app.JobID == jobID && app.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) ListByUser(userID string) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, app := range r.apps {
		if app.UserID == userID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) CountByUserAndStatus(userID string, status models.ApplicationStatus) (int64, error) {
	var n int64
	for _, app := range r.apps {
		if app.UserID == userID && app.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) acceptedOnCompleted(userID string) []*models.JobApplication {
	var out []*models.JobApplication
	for _, app := range r.apps {
		if app.UserID != userID || app.Status != models.ApplicationStatusAccepted {
			continue
		}
		job, ok := r.jobs.jobs[app.JobID]
		if !ok || job.Status != models.JobStatusCompleted {
			continue
		}
		out = append(out, app)
	}
	return out
}

func (r *fakeApplicationRepo) CountAcceptedOnCompletedJobs(userID string) (int64, error) {
	return int64(len(r.acceptedOnCompleted(userID))), nil
}

func (r *fakeApplicationRepo) SumAcceptedRateOnCompletedJobs(userID string) (float64, error) {
	var sum float64
	for _, app := range r.acceptedOnCompleted(userID) {
		if app.ProposedRate != nil {
			sum += *app.ProposedRate
		}
	}
	return sum, nil
}

// --- complaints ---

type fakeComplaintRepo struct {
	complaints map[string]*models.Complaint
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: make(map[string]*models.Complaint)}
}

func (r *fakeComplaintRepo) add(c *models.Complaint) *models.Complaint {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.complaints[c.ID] = c
	return c
}

func (r *fakeComplaintRepo) Create(c *models.Complaint) error {
	r.add(c)
	return nil
}

func (r *fakeComplaintRepo) FindSupervised(id, agentID string) (*models.Complaint, error) {
	c, ok := r.complaints[id]
	if !ok || c.AgentID != agentID {
		return nil, repositories.ErrComplaintNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeComplaintRepo) ListRecentByAgent(agentID string, limit int) ([]models.Complaint, error) {
	var out []models.Complaint
	for _, c := range r.complaints {
		if c.AgentID == agentID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeComplaintRepo) CountByAgentAndStatus(agentID string, status models.ComplaintStatus) (int64, error) {
	var n int64
	for _, c := range r.complaints {
		if c.AgentID == agentID && c.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeComplaintRepo) CountByAgentInRange(agentID string, from, to *time.Time, status models.ComplaintStatus) (int64, error) {
	var n int64
	for _, c := range r.complaints {
		if c.AgentID != agentID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		if from != nil && c.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && c.CreatedAt.After(*to) {
			continue
		}
		n++
	}
	return n, nil
}

func (r *fakeComplaintRepo) ResolveSupervised(complaintID, agentID string) error {
	c, ok := r.complaints[complaintID]
	if !ok || c.AgentID != agentID || c.Status != models.ComplaintStatusOpen {
		return repositories.ErrComplaintNotFound
	}
	c.Status = models.ComplaintStatusResolved
	return nil
}

func (r *fakeComplaintRepo) CountByStatus(status models.ComplaintStatus) (int64, error) {
	var n int64
	for _, c := range r.complaints {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

// --- services ---

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*models.Service)}
}

func (r *fakeServiceRepo) Create(s *models.Service) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	r.services[s.ID] = s
	return nil
}

func (r *fakeServiceRepo) ListByUser(userID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) FindOwned(id, userID string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok || s.UserID != userID {
		return nil, repositories.ErrServiceNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeServiceRepo) UpdateOwned(id, userID string, updates map[string]interface{}) error {
	s, ok := r.services[id]
	if !ok || s.UserID != userID {
		return repositories.ErrServiceNotFound
	}
	for column, value := range updates {
		switch column {
		case "title":
			s.Title = value.(string)
		case "description":
			s.Description = value.(string)
		case "rate":
			s.Rate = value.(float64)
		case "availability":
			s.Availability = value.(string)
		}
	}
	return nil
}

func (r *fakeServiceRepo) DeleteOwned(id, userID string) error {
	s, ok := r.services[id]
	if !ok || s.UserID != userID {
		return repositories.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

// --- analytics ---

type fakeAnalyticsRepo struct {
	ratings      map[string][]int
	profileViews map[string][]time.Time
	usersByRole  map[models.UserRole]int64
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{
		ratings:      make(map[string][]int),
		profileViews: make(map[string][]time.Time),
		usersByRole:  make(map[models.UserRole]int64),
	}
}

func (r *fakeAnalyticsRepo) AverageRating(userID string) (float64, error) {
	ratings := r.ratings[userID]
	if len(ratings) == 0 {
		return 0, nil
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating
	}
	return float64(sum) / float64(len(ratings)), nil
}

func (r *fakeAnalyticsRepo) CountProfileViewsSince(userID string, since time.Time) (int64, error) {
	var n int64
	for _, viewedAt := range r.profileViews[userID] {
		if !viewedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *fakeAnalyticsRepo) CountUsersByRole() (map[models.UserRole]int64, error) {
	out := make(map[models.UserRole]int64, len(r.usersByRole))
	for role, n := range r.usersByRole {
		out[role] = n
	}
	return out, nil
}
