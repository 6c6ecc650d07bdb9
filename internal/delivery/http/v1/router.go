package v1

import (
	"net/http"
	"time"

	"pathfinder-backend/config"
	"pathfinder-backend/internal/delivery/http/middleware"
	"pathfinder-backend/internal/delivery/http/response"
	"pathfinder-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	ProfileUC   domain.ProfileUsecase
	DocumentUC  domain.DocumentUsecase
	ShareUC     domain.ShareUsecase
	DashboardUC domain.DashboardUsecase
	JobUC       domain.JobUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints carry a stricter limit than the global one.
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewAuthHandler(public, protected, deps.AuthUC)
		NewProfileHandler(protected, deps.ProfileUC)
		NewDocumentHandler(protected, deps.DocumentUC)
		NewShareHandler(protected, deps.ShareUC)
		NewDashboardHandler(protected, deps.DashboardUC)
		NewJobHandler(protected, deps.JobUC)
	}

	return r
}
