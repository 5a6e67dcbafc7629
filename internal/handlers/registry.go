package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	JobHandler       *JobHandler
	ProviderHandler  *ProviderHandler
	AgentHandler     *AgentHandler
	ComplaintHandler *ComplaintHandler
	AdminHandler     *AdminHandler
}
