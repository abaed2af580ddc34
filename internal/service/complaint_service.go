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

// SubmitComplaintInput is what a student provides when filing a complaint.
type SubmitComplaintInput struct {
	Category    model.ComplaintCategory
	Description string
	ImageData   []byte
}

// ComplaintService runs the complaint lifecycle:
// Submitted (student) → In Progress (admin assign) → Resolved (assigned staff).
type ComplaintService struct {
	complaints    ComplaintStore
	cache         StatsCache
	maxImageBytes int64
	log           zerolog.Logger
}

// NewComplaintService creates a new ComplaintService. cache may be nil.
func NewComplaintService(complaints ComplaintStore, cache StatsCache, maxImageBytes int64, log zerolog.Logger) *ComplaintService {
	return &ComplaintService{
		complaints:    complaints,
		cache:         cache,
		maxImageBytes: maxImageBytes,
		log:           log.With().Str("component", "complaint_service").Logger(),
	}
}

// Submit files a complaint owned by studentID with status Submitted and no
// assignee.
func (s *ComplaintService) Submit(ctx context.Context, studentID uuid.UUID, in SubmitComplaintInput) (*model.Complaint, error) {
	if !in.Category.Valid() {
		return nil, invalidField("category", "category must be one of Electrical, Plumbing, Cleanliness, Other")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, invalidField("description", "description is required")
	}
	image, err := InspectImage(in.ImageData, s.maxImageBytes)
	if err != nil {
		return nil, err
	}

	complaint := &model.Complaint{
		StudentID:   studentID,
		Category:    in.Category,
		Description: description,
		Image:       image,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		if errors.Is(err, repository.ErrReferenceMissing) {
			// The token outlived the student record.
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("create complaint: %w", err)
	}

	s.invalidateStats(ctx)
	s.log.Info().
		Str("complaint_id", complaint.ID.String()).
		Str("category", string(complaint.Category)).
		Msg("Complaint submitted")

	return complaint, nil
}

// ListForStudent returns the student's own complaints, newest first.
func (s *ComplaintService) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]model.Complaint, error) {
	complaints, err := s.complaints.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list student complaints: %w", err)
	}
	return complaints, nil
}

// ListAll returns every complaint with student and staff joined, newest first.
func (s *ComplaintService) ListAll(ctx context.Context) ([]model.Complaint, error) {
	complaints, err := s.complaints.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

// Get returns a single complaint with joins.
func (s *ComplaintService) Get(ctx context.Context, id uuid.UUID) (*model.Complaint, error) {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("get complaint: %w", err)
	}
	return complaint, nil
}

// Stats returns total, resolved and pending counts where
// pending = total - resolved. The cache generation is read before counting so
// a write that lands mid-count invalidates the result.
func (s *ComplaintService) Stats(ctx context.Context) (*model.ComplaintStats, error) {
	cache, version := s.cache, int64(0)
	if cache != nil {
		v, err := cache.Version(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("Stats cache version read failed")
			cache = nil
		}
		version = v
	}

	if cache != nil {
		stats, err := cache.Get(ctx, version)
		if err == nil {
			return stats, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Warn().Err(err).Msg("Stats cache read failed")
		}
	}

	total, resolved, err := s.complaints.CountStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("count complaints: %w", err)
	}
	stats := &model.ComplaintStats{
		Total:    total,
		Resolved: resolved,
		Pending:  total - resolved,
	}

	if cache != nil {
		if err := cache.Set(ctx, version, stats); err != nil {
			s.log.Warn().Err(err).Msg("Stats cache write failed")
		}
	}
	return stats, nil
}

// Assign hands a complaint to staffID and moves it to In Progress. Any
// previous assignment is overwritten, and the staff member's specialty is not
// checked against the category.
func (s *ComplaintService) Assign(ctx context.Context, id, staffID uuid.UUID) (*model.Complaint, error) {
	if staffID == uuid.Nil {
		return nil, invalidField("staff_id", "staff_id is required")
	}

	if err := s.complaints.Assign(ctx, id, staffID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrComplaintNotFound
		case errors.Is(err, repository.ErrReferenceMissing):
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("assign complaint: %w", err)
	}

	s.invalidateStats(ctx)

	complaint, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint.AssignedStaff != nil {
		if suggested, ok := model.SuggestedStaffRole(complaint.Category); ok &&
			!strings.EqualFold(suggested, complaint.AssignedStaff.Role) {
			s.log.Info().
				Str("complaint_id", id.String()).
				Str("category", string(complaint.Category)).
				Str("staff_role", complaint.AssignedStaff.Role).
				Msg("Complaint assigned outside suggested specialty")
		}
	}
	return complaint, nil
}

// ListActiveForStaff returns the staff member's unresolved complaints, newest first.
func (s *ComplaintService) ListActiveForStaff(ctx context.Context, staffID uuid.UUID) ([]model.Complaint, error) {
	complaints, err := s.complaints.ListActiveByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("list active complaints: %w", err)
	}
	return complaints, nil
}

// ListResolvedForStaff returns complaints the staff member resolved, most
// recently updated first.
func (s *ComplaintService) ListResolvedForStaff(ctx context.Context, staffID uuid.UUID) ([]model.Complaint, error) {
	complaints, err := s.complaints.ListResolvedByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("list resolved complaints: %w", err)
	}
	return complaints, nil
}

// UpdateStatus lets the assigned staff member move a complaint to In Progress
// or Resolved. Resolving requires remarks. A missing complaint is
// ErrComplaintNotFound; one assigned to someone else is ErrNotAssigned.
func (s *ComplaintService) UpdateStatus(ctx context.Context, staffID, id uuid.UUID, status model.ComplaintStatus, remarks string) (*model.Complaint, error) {
	if !status.StaffSettable() {
		return nil, invalidField("status", "status must be one of In Progress, Resolved")
	}
	remarks = strings.TrimSpace(remarks)
	if status == model.StatusResolved && remarks == "" {
		return nil, invalidField("remarks", "remarks are required for resolved complaints")
	}

	complaint, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !complaint.IsAssignedTo(staffID) {
		return nil, ErrNotAssigned
	}

	if _, err := s.complaints.UpdateStatus(ctx, id, staffID, status, remarks); err != nil {
		// The row matched a moment ago, so a miss means it was reassigned.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotAssigned
		}
		return nil, fmt.Errorf("update complaint status: %w", err)
	}

	s.invalidateStats(ctx)
	s.log.Info().
		Str("complaint_id", id.String()).
		Str("status", string(status)).
		Msg("Complaint status updated")

	return s.Get(ctx, id)
}

func (s *ComplaintService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Stats cache invalidation failed")
	}
}
