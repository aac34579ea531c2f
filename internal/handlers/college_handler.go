package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InnoTrack-2025/research-service/internal/services"
	"github.com/InnoTrack-2025/research-service/internal/utils"
	"github.com/InnoTrack-2025/research-service/internal/validator"
)

type CollegeHandler struct {
	BaseHandler
	collegeService services.CollegeService
}

func NewCollegeHandler(collegeService services.CollegeService, logger utils.Logger) *CollegeHandler {
	return &CollegeHandler{
		BaseHandler:    NewBaseHandler(logger),
		collegeService: collegeService,
	}
}

// ListColleges is public so registration forms can offer the college list.
func (h *CollegeHandler) ListColleges(c *gin.Context) {
	colleges, err := h.collegeService.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, colleges)
}

// CreateCollege registers a new institution. Government role only.
func (h *CollegeHandler) CreateCollege(c *gin.Context) {
	user, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	var req services.CreateCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Registering college", "college_id", req.CollegeID)

	college, err := h.collegeService.Create(c.Request.Context(), &req, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, college)
}

func (h *CollegeHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrs.Messages(),
		})
	case errors.Is(err, services.ErrCollegeExists):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "A college with this id already exists",
		})
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Insufficient permissions",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
