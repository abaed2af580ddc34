package model

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a maintenance worker. Role is a free-text specialty such as
// "Electrician" and is matched against SuggestedStaffRole.
type Staff struct {
	ID           uuid.UUID `json:"id"`
	StaffID      string    `json:"staff_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateStaffRequest is the payload for adding a staff member.
type CreateStaffRequest struct {
	StaffID  string `json:"staff_id" binding:"required,min=1,max=50"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Role     string `json:"role" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// UpdateStaffRequest replaces a staff member's details. Password is optional;
// when present it is re-hashed.
type UpdateStaffRequest struct {
	StaffID  string `json:"staff_id" binding:"required,min=1,max=50"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Role     string `json:"role" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"omitempty,min=6,max=72"`
}
