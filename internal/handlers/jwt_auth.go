package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/InnoTrack-2025/research-service/internal/auth"
	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
	"github.com/InnoTrack-2025/research-service/internal/utils"
)

// JWTAuthMiddleware authenticates requests with bearer tokens issued by
// the auth service and resolves the account behind each token.
type JWTAuthMiddleware struct {
	tokens   *auth.TokenService
	userRepo repositories.UserRepository
}

func NewJWTAuthMiddleware(tokens *auth.TokenService, userRepo repositories.UserRepository) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// AuthMiddleware validates the bearer token and loads the user into the
// request context. The user lookup keeps revoked accounts out even when
// their token has not expired yet.
func (m *JWTAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authentication required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.Parse(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid or expired token",
				Code:    "INVALID_TOKEN",
			})
			c.Abort()
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid or expired token",
				Code:    "INVALID_TOKEN",
			})
			c.Abort()
			return
		}

		// Activity tracking must never block the request.
		if err := m.userRepo.TouchLastActive(c.Request.Context(), user.ID); err != nil {
			utils.GetLogger(c).Warn("failed to update last active", "error", err, "user_id", user.ID)
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)
		c.Set("user_role", user.Role)
		c.Set("user_email", user.Email)

		c.Next()
	}
}

// RequireRoleMiddleware checks if user has required role
func (m *JWTAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "User role not found in context",
			})
			c.Abort()
			return
		}

		role, ok := userRole.(models.UserRole)
		if !ok {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Message: "Invalid user role format",
			})
			c.Abort()
			return
		}

		for _, requiredRole := range requiredRoles {
			if role == requiredRole {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: fmt.Sprintf("Insufficient permissions, required role: %v", requiredRoles),
		})
		c.Abort()
	}
}

// RequireDepartmentMiddleware rejects accounts that have not completed
// their profile with a department. Resource endpoints depend on it for
// default values and filtering.
func (m *JWTAuthMiddleware) RequireDepartmentMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Message: "User not authenticated",
			})
			c.Abort()
			return
		}

		// Government users have no department; their access is read-only
		// at the service layer anyway.
		if user.Role != models.RoleGovernment && user.Department == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Department is required, update your profile first",
				Code:    "DEPARTMENT_REQUIRED",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserFromContext extracts the authenticated user from Gin context.
func GetUserFromContext(c *gin.Context) (*models.User, error) {
	user, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("user not found in context")
	}

	userModel, ok := user.(*models.User)
	if !ok {
		return nil, fmt.Errorf("invalid user type in context")
	}

	return userModel, nil
}

// GetUserIDFromContext extracts the authenticated user ID from Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, fmt.Errorf("user ID not found in context")
	}

	id, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("invalid user ID type in context")
	}

	return id, nil
}
