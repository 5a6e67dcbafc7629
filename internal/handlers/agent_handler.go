package handlers

import (
	"net/http"

	"jobmarket_backend/internal/middleware"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/services"
	"jobmarket_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AgentHandler struct {
	*BaseHandler
	agentService services.AgentService
}

func NewAgentHandler(base *BaseHandler, agentService services.AgentService) *AgentHandler {
	return &AgentHandler{
		BaseHandler:  base,
		agentService: agentService,
	}
}

func (h *AgentHandler) RegisterRoutes(r *gin.RouterGroup) {
	agent := r.Group("/agent")
	agent.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAgent))
	{
		agent.GET("/profile", h.GetProfile)
		agent.GET("/stats", h.GetStats)
		agent.GET("/complaints/recent", h.RecentComplaints)
		agent.GET("/verifications/pending", h.PendingVerifications)
		agent.POST("/reports", h.GetReport)

		agent.GET("/jobs", h.ListJobs)
		agent.POST("/jobs", h.CreateJob)

		agent.GET("/users", h.ListUsers)
		agent.PUT("/users/:id/status", h.SetUserStatus)
		agent.PUT("/complaints/:id/resolve", h.ResolveComplaint)
	}
}

func (h *AgentHandler) GetProfile(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.agentService.GetProfile(agentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) GetStats(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.agentService.GetStats(agentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) RecentComplaints(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.agentService.RecentComplaints(agentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) PendingVerifications(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.agentService.PendingVerifications(agentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) GetReport(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.agentService.GetReport(agentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) ListJobs(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.agentService.ListJobs(agentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) CreateJob(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.agentService.CreateJob(agentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AgentHandler) ListUsers(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.SupervisedUsersQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.agentService.ListUsers(agentID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) SetUserStatus(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	userID := c.Param("id")

	var req dto.VerifyUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.agentService.SetUserStatus(userID, agentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AgentHandler) ResolveComplaint(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	complaintID := c.Param("id")

	resp, err := h.agentService.ResolveComplaint(complaintID, agentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
