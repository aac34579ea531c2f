package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
	"github.com/InnoTrack-2025/research-service/internal/services"
	"github.com/InnoTrack-2025/research-service/internal/utils"
	"github.com/InnoTrack-2025/research-service/internal/validator"
)

// ResourceHandler is the shared HTTP surface over one resource type.
// C and U are the create and update request DTOs; the fromCreate and
// applyUpdate adapters are the only per-resource code.
type ResourceHandler[T models.Owned, C any, U any] struct {
	BaseHandler
	name      string
	service   services.ResourceService[T]
	validator *validator.Validator

	fromCreate  func(req *C, user *models.User) T
	applyUpdate func(req *U) func(T) error
}

func NewResourceHandler[T models.Owned, C any, U any](
	name string,
	service services.ResourceService[T],
	v *validator.Validator,
	logger utils.Logger,
	fromCreate func(req *C, user *models.User) T,
	applyUpdate func(req *U) func(T) error,
) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{
		BaseHandler: NewBaseHandler(logger),
		name:        name,
		service:     service,
		validator:   v,
		fromCreate:  fromCreate,
		applyUpdate: applyUpdate,
	}
}

// Register attaches the CRUD routes to a router group.
func (h *ResourceHandler[T, C, U]) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *ResourceHandler[T, C, U]) Create(c *gin.Context) {
	user, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if verr := h.validator.Validate(&req); verr != nil {
		h.handleServiceError(c, verr)
		return
	}

	h.LogRequest(c, "Creating "+h.name, "user_id", user.ID)

	entity := h.fromCreate(&req, user)

	created, err := h.service.Create(c.Request.Context(), entity, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ResourceHandler[T, C, U]) Get(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	user, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *ResourceHandler[T, C, U]) List(c *gin.Context) {
	user, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	filters := h.parseResourceFilters(c, user)

	entities, total, err := h.service.List(c.Request.Context(), filters, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	page := (filters.Offset / max(filters.Limit, 1)) + 1

	c.JSON(http.StatusOK, ListResponse{
		Items: entities,
		Total: total,
		Page:  page,
		Size:  filters.Limit,
	})
}

func (h *ResourceHandler[T, C, U]) Update(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	user, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if verr := h.validator.Validate(&req); verr != nil {
		h.handleServiceError(c, verr)
		return
	}

	h.LogRequest(c, "Updating "+h.name, "id", id, "user_id", user.ID)

	updated, err := h.service.Update(c.Request.Context(), id, h.applyUpdate(&req), user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ResourceHandler[T, C, U]) Delete(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	user, err := GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
		return
	}

	h.LogRequest(c, "Deleting "+h.name, "id", id, "user_id", user.ID)

	if err := h.service.Delete(c.Request.Context(), id, user); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Deleted successfully",
	})
}

// parseResourceFilters reads pagination, sorting and the shared query
// filters. The mine flag lets elevated readers scope a listing to their
// own records.
func (h *ResourceHandler[T, C, U]) parseResourceFilters(c *gin.Context, user *models.User) repositories.ResourceFilters {
	page := h.parseIntQuery(c, "page", 1)
	size := h.parseIntQuery(c, "size", 10)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	filters := repositories.ResourceFilters{
		Limit:     size,
		Offset:    (page - 1) * size,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	if department := c.Query("department"); department != "" {
		filters.Department = &department
	}
	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}
	if c.Query("mine") == "true" {
		filters.CreatedBy = &user.ID
	}

	return filters
}

func (h *ResourceHandler[T, C, U]) handleServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrs.Messages(),
		})
	case errors.Is(err, services.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Resource not found",
		})
	case errors.Is(err, services.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "A record with this identifier already exists",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
