package v1

import (
	"net/http"
	"time"

	"go-interview-tracker/config"
	"go-interview-tracker/internal/delivery/http/middleware"
	"go-interview-tracker/internal/delivery/http/response"
	"go-interview-tracker/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	CompanyUC   domain.CompanyUsecase
	PositionUC  domain.PositionUsecase
	InterviewUC domain.InterviewUsecase
	DashboardUC domain.DashboardUsecase
	StudentUC   domain.StudentUsecase
	UserRepo    domain.UserRepository
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.UserRepo))
	protected.Use(middleware.CSRFMiddleware())
	{
		NewAuthHandler(api, protected, deps.AuthUC)
		NewCompanyHandler(protected, deps.CompanyUC)
		NewPositionHandler(protected, deps.PositionUC)
		NewInterviewHandler(protected, deps.InterviewUC)
		NewDashboardHandler(protected, deps.DashboardUC)
		NewStudentHandler(protected, deps.StudentUC)
	}

	return r
}
