package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hostelcare/complaints-backend/internal/config"
	"github.com/hostelcare/complaints-backend/internal/database"
	"github.com/hostelcare/complaints-backend/internal/logger"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/repository"
	"github.com/hostelcare/complaints-backend/internal/service"
	zlog "github.com/rs/zerolog/log"
)

// seedPassword is shared by every seeded account. Local development only.
const seedPassword = "hostel123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Invalid configuration")
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	studentService := service.NewStudentService(repository.NewStudentRepository(pool), hasher)
	staffService := service.NewStaffService(repository.NewStaffRepository(pool), hasher, log)

	fmt.Println("=== Seeding staff ===")
	staff := []model.CreateStaffRequest{
		{StaffID: "EL-001", Name: "Ravi Kumar", Email: "ravi.electric@hostel.local", Role: "Electrician"},
		{StaffID: "EL-002", Name: "Meena Iyer", Email: "meena.electric@hostel.local", Role: "Electrician"},
		{StaffID: "PL-001", Name: "Arjun Das", Email: "arjun.plumb@hostel.local", Role: "Plumber"},
		{StaffID: "CL-001", Name: "Lakshmi Rao", Email: "lakshmi.clean@hostel.local", Role: "Cleaner"},
		{StaffID: "MT-001", Name: "Farhan Ali", Email: "farhan.maint@hostel.local", Role: "Carpenter"},
	}
	staffCount := 0
	for _, req := range staff {
		req.Password = seedPassword
		if _, err := staffService.Create(ctx, req); err != nil {
			if errors.Is(err, service.ErrConflict) {
				fmt.Printf("Skipping %s: already exists\n", req.StaffID)
				continue
			}
			fmt.Printf("Error creating staff %s: %v\n", req.StaffID, err)
			continue
		}
		staffCount++
	}

	fmt.Println("=== Seeding students ===")
	names := []string{
		"Aditi Sharma", "Bilal Khan", "Chitra Nair", "Dev Patel", "Esha Gupta",
		"Farah Siddiqui", "Gautam Menon", "Harini Reddy", "Imran Sheikh", "Jaya Pillai",
	}
	studentCount := 0
	for i, name := range names {
		req := model.RegisterStudentRequest{
			RollNumber: fmt.Sprintf("H%04d", i+1),
			Name:       name,
			Email:      fmt.Sprintf("student%d@hostel.local", i+1),
			Password:   seedPassword,
		}
		if _, err := studentService.Register(ctx, req); err != nil {
			if errors.Is(err, service.ErrConflict) {
				fmt.Printf("Skipping %s: already exists\n", req.RollNumber)
				continue
			}
			fmt.Printf("Error creating student %s: %v\n", req.RollNumber, err)
			continue
		}
		studentCount++
	}

	fmt.Printf("\nSeed completed! Added %d/%d staff and %d/%d students.\n",
		staffCount, len(staff), studentCount, len(names))
}
