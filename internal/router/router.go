package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hostelcare/complaints-backend/internal/config"
	"github.com/hostelcare/complaints-backend/internal/handler"
	"github.com/hostelcare/complaints-backend/internal/middleware"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/response"
	"github.com/hostelcare/complaints-backend/internal/service"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth           *handler.AuthHandler
	Complaint      *handler.ComplaintHandler
	AdminComplaint *handler.AdminComplaintHandler
	StaffMgmt      *handler.StaffManagementHandler
	StaffPortal    *handler.StaffPortalHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// Multipart parts above this spill to temp files instead of memory.
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.HeaderAuthToken, "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the logger and every envelope share it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", middleware.Authenticate(authService), handlers.Auth.Me)
	}

	// ─── 2. Student Group ──────────────────────────────────────────────
	studentAPI := router.Group("/api/complaints")
	studentAPI.Use(
		middleware.Authenticate(authService),
		middleware.RequireRole(model.RoleStudent),
	)
	{
		studentAPI.POST("", handlers.Complaint.SubmitComplaint)
		studentAPI.GET("/my-complaints", handlers.Complaint.ListMyComplaints)
	}

	// ─── 3. Admin Group ────────────────────────────────────────────────
	adminAPI := router.Group("/api/admin")
	adminAPI.Use(
		middleware.Authenticate(authService),
		middleware.RequireRole(model.RoleAdmin),
	)
	{
		adminAPI.GET("/complaints", handlers.AdminComplaint.ListComplaints)
		adminAPI.GET("/complaints/stats", handlers.AdminComplaint.GetStats)
		adminAPI.GET("/complaints/:id", handlers.AdminComplaint.GetComplaint)
		adminAPI.PUT("/complaints/:id/assign", handlers.AdminComplaint.AssignComplaint)

		adminAPI.GET("/staff", handlers.StaffMgmt.ListStaff)
		adminAPI.POST("/staff", handlers.StaffMgmt.CreateStaff)
		adminAPI.PUT("/staff/:id", handlers.StaffMgmt.UpdateStaff)
		adminAPI.DELETE("/staff/:id", handlers.StaffMgmt.DeleteStaff)
	}

	// ─── 4. Staff Group ────────────────────────────────────────────────
	staffAPI := router.Group("/api/staff")
	staffAPI.Use(
		middleware.Authenticate(authService),
		middleware.RequireRole(model.RoleStaff),
	)
	{
		staffAPI.GET("/complaints/active", handlers.StaffPortal.ListActive)
		staffAPI.GET("/complaints/resolved", handlers.StaffPortal.ListResolved)
		staffAPI.PUT("/complaints/:id/status", handlers.StaffPortal.UpdateStatus)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}
