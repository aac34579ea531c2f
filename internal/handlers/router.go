package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/InnoTrack-2025/research-service/internal/auth"
	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/repositories"
	"github.com/InnoTrack-2025/research-service/internal/services"
	"github.com/InnoTrack-2025/research-service/internal/utils"
	"github.com/InnoTrack-2025/research-service/internal/validator"
)

type HandlerManager struct {
	authHandler    *AuthHandler
	userHandler    *UserHandler
	collegeHandler *CollegeHandler

	publicationHandler *PublicationHandler
	patentHandler      *PatentHandler
	grantHandler       *GrantHandler
	awardHandler       *AwardHandler
	startupHandler     *StartupHandler
	projectHandler     *InnovationProjectHandler

	dashboardHandler *DashboardHandler
	authMiddleware   *JWTAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	v *validator.Validator,
	logger utils.Logger,
	tokens *auth.TokenService,
	userRepo repositories.UserRepository,
) *HandlerManager {
	return &HandlerManager{
		authHandler:    NewAuthHandler(serviceManager.Auth(), logger),
		userHandler:    NewUserHandler(serviceManager.User(), logger),
		collegeHandler: NewCollegeHandler(serviceManager.College(), logger),

		publicationHandler: NewPublicationHandler(serviceManager.Publications(), v, logger),
		patentHandler:      NewPatentHandler(serviceManager.Patents(), v, logger),
		grantHandler:       NewGrantHandler(serviceManager.Grants(), v, logger),
		awardHandler:       NewAwardHandler(serviceManager.Awards(), v, logger),
		startupHandler:     NewStartupHandler(serviceManager.Startups(), v, logger),
		projectHandler:     NewInnovationProjectHandler(serviceManager.Projects(), v, logger),

		dashboardHandler: NewDashboardHandler(serviceManager.Dashboard(), logger),
		authMiddleware:   NewJWTAuthMiddleware(tokens, userRepo),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Public routes
		api.POST("/auth/register", hm.authHandler.Register)
		api.POST("/auth/login", hm.authHandler.Login)
		api.GET("/colleges", hm.collegeHandler.ListColleges)

		// Authenticated routes
		authed := api.Group("")
		authed.Use(hm.authMiddleware.AuthMiddleware())
		{
			authed.GET("/auth/me", hm.authHandler.Me)

			authed.GET("/users/me", hm.userHandler.GetProfile)
			authed.PUT("/users/me", hm.userHandler.UpdateProfile)

			authed.POST("/colleges", hm.authMiddleware.RequireRoleMiddleware(models.RoleGovernment), hm.collegeHandler.CreateCollege)

			authed.GET("/dashboard/stats", hm.dashboardHandler.GetStats)

			// Resource routes share the department precondition
			resources := authed.Group("")
			resources.Use(hm.authMiddleware.RequireDepartmentMiddleware())
			{
				hm.publicationHandler.Register(resources.Group("/publications"))
				hm.patentHandler.Register(resources.Group("/patents"))
				hm.grantHandler.Register(resources.Group("/grants"))
				hm.awardHandler.Register(resources.Group("/awards"))
				hm.startupHandler.Register(resources.Group("/startups"))
				hm.projectHandler.Register(resources.Group("/innovation-projects"))
			}
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "research-service",
		})
	})
}
