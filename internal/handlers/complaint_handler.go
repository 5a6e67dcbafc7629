package handlers

import (
	"net/http"

	"jobmarket_backend/internal/middleware"
	"jobmarket_backend/internal/services"
	"jobmarket_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	*BaseHandler
	complaintService services.ComplaintService
}

func NewComplaintHandler(base *BaseHandler, complaintService services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		BaseHandler:      base,
		complaintService: complaintService,
	}
}

func (h *ComplaintHandler) RegisterRoutes(r *gin.RouterGroup) {
	complaints := r.Group("/complaints")
	complaints.Use(middleware.AuthMiddleware())
	{
		// Any authenticated user can file a complaint.
		complaints.POST("", h.CreateComplaint)
	}
}

func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateComplaintRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.complaintService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
