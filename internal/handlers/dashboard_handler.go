package handlers

import (
	"context"
	"net/http"

	"skillsphere-service/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Service *service.AssessmentService
}

func NewDashboardHandler(s *service.AssessmentService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// Overview returns the aggregate dashboard metrics for a user. Analytics
// failures degrade to zero-valued metrics, so this never returns an error.
func (h *DashboardHandler) Overview(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	metrics := h.Service.Dashboard(context.Background(), userID)
	c.JSON(http.StatusOK, metrics)
}
