package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/model"
)

// StudentStore is the persistence contract for students. Lookups return
// repository.ErrNotFound on a miss and Create returns repository.ErrDuplicate
// on a unique violation.
type StudentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error)
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	Create(ctx context.Context, s *model.Student) error
}

// StaffStore is the persistence contract for staff.
type StaffStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Staff, error)
	GetByEmail(ctx context.Context, email string) (*model.Staff, error)
	List(ctx context.Context, role string) ([]model.Staff, error)
	Create(ctx context.Context, s *model.Staff) error
	// Update writes the details and, when PasswordHash is set, the new hash
	// in one statement.
	Update(ctx context.Context, s *model.Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ComplaintStore is the persistence contract for complaints. Every write
// touches a single row.
type ComplaintStore interface {
	Create(ctx context.Context, c *model.Complaint) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Complaint, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Complaint, error)
	ListAll(ctx context.Context) ([]model.Complaint, error)
	ListActiveByStaff(ctx context.Context, staffID uuid.UUID) ([]model.Complaint, error)
	ListResolvedByStaff(ctx context.Context, staffID uuid.UUID) ([]model.Complaint, error)
	Assign(ctx context.Context, id, staffID uuid.UUID) error
	UpdateStatus(ctx context.Context, id, staffID uuid.UUID, status model.ComplaintStatus, remarks string) (time.Time, error)
	CountStats(ctx context.Context) (total, resolved int, err error)
}

// StatsCache holds precomputed dashboard counters under a generation
// number. Invalidate moves to a new generation, so counters computed before
// it are never read again. Get returns repository.ErrNotFound on a miss.
type StatsCache interface {
	Version(ctx context.Context) (int64, error)
	Get(ctx context.Context, version int64) (*model.ComplaintStats, error)
	Set(ctx context.Context, version int64, stats *model.ComplaintStats) error
	Invalidate(ctx context.Context) error
}
