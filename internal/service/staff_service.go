package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/repository"
	"github.com/rs/zerolog"
)

// StaffService manages the staff directory.
type StaffService struct {
	staff  StaffStore
	hasher *PasswordHasher
	log    zerolog.Logger
}

// NewStaffService creates a new StaffService.
func NewStaffService(staff StaffStore, hasher *PasswordHasher, log zerolog.Logger) *StaffService {
	return &StaffService{
		staff:  staff,
		hasher: hasher,
		log:    log.With().Str("component", "staff_service").Logger(),
	}
}

// GetByID retrieves a staff member.
func (s *StaffService) GetByID(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return staff, nil
}

// List returns all staff. With a category, only staff whose role matches the
// suggested specialty are returned; Other (no suggestion) returns everyone.
func (s *StaffService) List(ctx context.Context, category model.ComplaintCategory) ([]model.Staff, error) {
	role := ""
	if category != "" {
		if !category.Valid() {
			return nil, invalidField("category", "category must be one of Electrical, Plumbing, Cleanliness, Other")
		}
		role, _ = model.SuggestedStaffRole(category)
	}

	staff, err := s.staff.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return staff, nil
}

// Create adds a staff member with a hashed password. Staff id and email must
// be unique among staff.
func (s *StaffService) Create(ctx context.Context, req model.CreateStaffRequest) (*model.Staff, error) {
	staff := &model.Staff{
		StaffID: strings.TrimSpace(req.StaffID),
		Name:    strings.TrimSpace(req.Name),
		Email:   normalizeEmail(req.Email),
		Role:    strings.TrimSpace(req.Role),
	}
	if err := validateStaffFields(staff); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	staff.PasswordHash = hash

	if err := s.staff.Create(ctx, staff); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create staff: %w", err)
	}

	s.log.Info().Str("staff_id", staff.StaffID).Str("role", staff.Role).Msg("Staff member created")
	return staff, nil
}

// Update replaces a staff member's details and, when req.Password is set,
// rotates their password. Details and password are written together.
func (s *StaffService) Update(ctx context.Context, id uuid.UUID, req model.UpdateStaffRequest) (*model.Staff, error) {
	staff := &model.Staff{
		ID:      id,
		StaffID: strings.TrimSpace(req.StaffID),
		Name:    strings.TrimSpace(req.Name),
		Email:   normalizeEmail(req.Email),
		Role:    strings.TrimSpace(req.Role),
	}
	if err := validateStaffFields(staff); err != nil {
		return nil, err
	}

	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		staff.PasswordHash = hash
	}

	if err := s.staff.Update(ctx, staff); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrStaffNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("update staff: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes a staff member. Complaints assigned to them are unassigned
// but keep their status.
func (s *StaffService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("delete staff: %w", err)
	}
	s.log.Info().Str("id", id.String()).Msg("Staff member removed")
	return nil
}

func validateStaffFields(staff *model.Staff) error {
	switch {
	case staff.StaffID == "":
		return invalidField("staff_id", "staff_id is required")
	case staff.Name == "":
		return invalidField("name", "name is required")
	case staff.Role == "":
		return invalidField("role", "role is required")
	}
	return nil
}
