package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/hostelcare/complaints-backend/internal/config"
	"github.com/hostelcare/complaints-backend/internal/database"
	"github.com/hostelcare/complaints-backend/internal/logger"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/repository"
	"github.com/hostelcare/complaints-backend/internal/service"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Invalid configuration")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	staffService := service.NewStaffService(
		repository.NewStaffRepository(pool),
		service.NewPasswordHasher(cfg.BcryptCost),
		log,
	)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create Staff Member ===")

	req := model.CreateStaffRequest{
		StaffID: prompt(reader, "Enter Staff ID: "),
		Name:    prompt(reader, "Enter Name: "),
		Email:   prompt(reader, "Enter Email: "),
		Role:    prompt(reader, "Enter Role (Electrician, Plumber, Cleaner, ...): "),
	}
	for field, value := range map[string]string{
		"Staff ID": req.StaffID, "Name": req.Name, "Email": req.Email, "Role": req.Role,
	} {
		if value == "" {
			fmt.Printf("Error: %s is required\n", field)
			return
		}
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	fmt.Println()
	req.Password = string(bytePassword)
	if len(req.Password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	staff, err := staffService.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			fmt.Println("Error: a staff member with that staff ID or email already exists")
			return
		}
		log.Fatal().Err(err).Msg("Failed to create staff member")
	}

	fmt.Printf("\nSuccess! %s '%s' (%s) created with ID: %s\n", staff.Role, staff.Name, staff.Email, staff.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
