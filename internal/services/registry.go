package services

import "jobmarket_backend/internal/email"

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService      AuthService
	JobService       JobService
	ProviderService  ProviderService
	AgentService     AgentService
	ComplaintService ComplaintService
	AdminService     AdminService
	EmailProvider    email.Provider
}
