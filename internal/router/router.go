package router

import (
	"github.com/gin-gonic/gin"

	"sarabun/internal/config"
	"sarabun/internal/domain"
	"sarabun/internal/handler"
	"sarabun/internal/middleware"
	"sarabun/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	projectH *handler.ProjectHandler,
	numberH *handler.NumberHandler,
	reportH *handler.ReportHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Project routes; creating revisions is admin-only
	projects := protected.Group("/projects")
	projects.GET("", projectH.List)
	projects.POST("", projectH.Register)
	projects.GET("/:id", projectH.GetSummary)
	projects.GET("/:id/revisions", projectH.ListRevisions)
	projects.POST("/:id/revisions", middleware.RequireRole(domain.RoleAdmin), projectH.CreateRevision)

	// Number series
	numbers := protected.Group("/numbers")
	numbers.GET("/peek", numberH.Peek)

	// Reports
	reports := protected.Group("/reports")
	reports.GET("/register", reportH.Register)

	// Account management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), userH.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), userH.List)
	users.GET("/:id", userH.GetByID)

	return r
}
