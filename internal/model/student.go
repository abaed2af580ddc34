package model

import (
	"time"

	"github.com/google/uuid"
)

// Student represents a hostel resident who files complaints.
type Student struct {
	ID           uuid.UUID `json:"id"`
	RollNumber   string    `json:"roll_number"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterStudentRequest is the payload for student self-registration.
type RegisterStudentRequest struct {
	RollNumber string `json:"roll_number" binding:"required,min=1,max=50"`
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Password   string `json:"password" binding:"required,min=6,max=72"`
}
