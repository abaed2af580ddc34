package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hostelcare/complaints-backend/internal/config"
	"github.com/hostelcare/complaints-backend/internal/database"
	"github.com/hostelcare/complaints-backend/internal/handler"
	"github.com/hostelcare/complaints-backend/internal/logger"
	"github.com/hostelcare/complaints-backend/internal/repository"
	"github.com/hostelcare/complaints-backend/internal/router"
	"github.com/hostelcare/complaints-backend/internal/service"
	"github.com/hostelcare/complaints-backend/internal/validator"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Invalid configuration")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Hostel Complaints Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	var statsCache service.StatsCache
	if rdb != nil {
		defer rdb.Close()
		statsCache = repository.NewRedisStatsCache(rdb, cfg.StatsCacheTTL)
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	authService, err := service.NewAuthService(service.AuthConfig{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		AdminName:     cfg.AdminName,
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.JWTExpiry,
	}, staffRepo, studentRepo, hasher)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth service")
	}
	studentService := service.NewStudentService(studentRepo, hasher)
	staffService := service.NewStaffService(staffRepo, hasher, log)
	complaintService := service.NewComplaintService(complaintRepo, statsCache, cfg.MaxUploadBytes(), log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:           handler.NewAuthHandler(authService, studentService),
		Complaint:      handler.NewComplaintHandler(complaintService, cfg.MaxUploadBytes()),
		AdminComplaint: handler.NewAdminComplaintHandler(complaintService),
		StaffMgmt:      handler.NewStaffManagementHandler(staffService),
		StaffPortal:    handler.NewStaffPortalHandler(complaintService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
