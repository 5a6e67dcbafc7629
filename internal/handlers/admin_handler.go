package handlers

import (
	"net/http"

	"jobmarket_backend/internal/middleware"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/services"
	"jobmarket_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/stats", h.GetPlatformStats)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AdminUsersQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.adminService.ListUsers(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) GetPlatformStats(c *gin.Context) {
	resp, err := h.adminService.GetPlatformStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
