package handlers

import (
	"time"

	"github.com/alnahhas/surgery_clinic_app/cmd/docs"
	portssvc "github.com/alnahhas/surgery_clinic_app/internal/core/ports/services"
	"github.com/alnahhas/surgery_clinic_app/internal/middleware"
	"github.com/alnahhas/surgery_clinic_app/internal/platform/config"
	"github.com/alnahhas/surgery_clinic_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := r.Group("/api", middleware.PosthogMiddleware(posthogClient))

	setupPublicRoutes(api, services)
	setupSessionRoutes(api, services)
	setupAdminRoutes(api, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupPublicRoutes registers everything reachable without a session: login,
// invite-based registration, first-run setup and the read-only file endpoints.
func setupPublicRoutes(api *gin.RouterGroup, services *portssvc.ServiceContainer) {
	// Login is limited per client IP; brute force on the small account set
	// is the concern.
	loginLimiter := middleware.RateLimit(limiter.New(memory.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  5,
	}))

	auth := api.Group("/auth")
	registerAuthRoutes(auth, services.Auth, loginLimiter)
	registerPublicRegistrationRoutes(auth, services.Registration)

	registerPublicFileRoutes(api, services.MedicalFile)
}

// setupSessionRoutes registers the routes every signed-in account may call.
func setupSessionRoutes(api *gin.RouterGroup, services *portssvc.ServiceContainer) {
	session := api.Group("", middleware.SessionAuthMiddleware(services.Auth))

	registerSessionAuthRoutes(session.Group("/auth"), services.Auth)
	registerPatientRoutes(session, services.Patient)
	registerClinicVisitRoutes(session, services.ClinicVisit)
	registerWardAdmissionRoutes(session, services.Admission)
	registerSurgeryRoutes(session, services.Surgery)
	registerEmergencyRoutes(session, services.Emergency)
	registerSessionFileRoutes(session, services.MedicalFile)
	registerStatisticsRoutes(session, services.Statistics)
}

// setupAdminRoutes registers account administration and invite management.
func setupAdminRoutes(api *gin.RouterGroup, services *portssvc.ServiceContainer) {
	admin := api.Group("", middleware.SessionAuthMiddleware(services.Auth), middleware.RequireAdmin())

	registerUserRoutes(admin, services.User)
	registerInviteAdminRoutes(admin.Group("/auth"), services.Registration)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
