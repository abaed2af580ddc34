package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/repository"
)

// StudentService handles student registration.
type StudentService struct {
	students StudentStore
	hasher   *PasswordHasher
}

// NewStudentService creates a new StudentService.
func NewStudentService(students StudentStore, hasher *PasswordHasher) *StudentService {
	return &StudentService{students: students, hasher: hasher}
}

// Register creates a student account. Email and roll number must be unique
// among students; staff emails are not checked.
func (s *StudentService) Register(ctx context.Context, req model.RegisterStudentRequest) (*model.Student, error) {
	student := &model.Student{
		RollNumber: strings.TrimSpace(req.RollNumber),
		Name:       strings.TrimSpace(req.Name),
		Email:      normalizeEmail(req.Email),
	}
	if student.RollNumber == "" {
		return nil, invalidField("roll_number", "roll_number is required")
	}
	if student.Name == "" {
		return nil, invalidField("name", "name is required")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	student.PasswordHash = hash

	if err := s.students.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create student: %w", err)
	}
	return student, nil
}
