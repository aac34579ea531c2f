package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InnoTrack-2025/research-service/internal/services"
	"github.com/InnoTrack-2025/research-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	service services.DashboardService
}

func NewDashboardHandler(service services.DashboardService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetStats returns aggregate counts and funding totals for the caller's
// records, or for all records when the caller holds the government role.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	user, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	h.LogRequest(c, "Getting dashboard stats", "user_id", user.ID)

	stats, err := h.service.GetStats(c.Request.Context(), user)
	if err != nil {
		h.LogError(c, err, "Failed to get dashboard stats")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
