// Package memstore is an in-process implementation of the repository
// contracts. It honours the same uniqueness, foreign-key and ordering rules
// as the Postgres schema and backs the service and handler tests.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/repository"
)

// Store holds students, staff and complaints behind a single mutex.
type Store struct {
	mu         sync.RWMutex
	students   map[uuid.UUID]model.Student
	staff      map[uuid.UUID]model.Staff
	complaints map[uuid.UUID]model.Complaint

	// Now supplies timestamps. Tests may replace it to control ordering.
	Now func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		students:   make(map[uuid.UUID]model.Student),
		staff:      make(map[uuid.UUID]model.Staff),
		complaints: make(map[uuid.UUID]model.Complaint),
		Now:        time.Now,
	}
}

// Students exposes the store as a student repository.
func (s *Store) Students() *StudentStore { return &StudentStore{s} }

// Staff exposes the store as a staff repository.
func (s *Store) Staff() *StaffStore { return &StaffStore{s} }

// Complaints exposes the store as a complaint repository.
func (s *Store) Complaints() *ComplaintStore { return &ComplaintStore{s} }

// ─── Students ──────────────────────────────────────────────────────────

type StudentStore struct{ s *Store }

func (r *StudentStore) GetByID(_ context.Context, id uuid.UUID) (*model.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &st, nil
}

func (r *StudentStore) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, st := range r.s.students {
		if st.Email == email {
			return &st, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *StudentStore) Create(_ context.Context, st *model.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.students {
		if other.Email == st.Email || other.RollNumber == st.RollNumber {
			return repository.ErrDuplicate
		}
	}
	now := r.s.Now()
	st.ID = uuid.New()
	st.CreatedAt, st.UpdatedAt = now, now
	r.s.students[st.ID] = *st
	return nil
}

// ─── Staff ─────────────────────────────────────────────────────────────

type StaffStore struct{ s *Store }

func (r *StaffStore) GetByID(_ context.Context, id uuid.UUID) (*model.Staff, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.staff[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &st, nil
}

func (r *StaffStore) GetByEmail(_ context.Context, email string) (*model.Staff, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, st := range r.s.staff {
		if st.Email == email {
			return &st, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *StaffStore) List(_ context.Context, role string) ([]model.Staff, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []model.Staff{}
	for _, st := range r.s.staff {
		if role == "" || strings.EqualFold(st.Role, role) {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *StaffStore) duplicate(st *model.Staff) bool {
	for id, other := range r.s.staff {
		if id == st.ID {
			continue
		}
		if other.Email == st.Email || other.StaffID == st.StaffID {
			return true
		}
	}
	return false
}

func (r *StaffStore) Create(_ context.Context, st *model.Staff) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st.ID = uuid.New()
	if r.duplicate(st) {
		return repository.ErrDuplicate
	}
	now := r.s.Now()
	st.CreatedAt, st.UpdatedAt = now, now
	r.s.staff[st.ID] = *st
	return nil
}

func (r *StaffStore) Update(_ context.Context, st *model.Staff) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.staff[st.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if r.duplicate(st) {
		return repository.ErrDuplicate
	}
	existing.StaffID, existing.Name, existing.Email, existing.Role = st.StaffID, st.Name, st.Email, st.Role
	if st.PasswordHash != "" {
		existing.PasswordHash = st.PasswordHash
	}
	existing.UpdatedAt = r.s.Now()
	r.s.staff[st.ID] = existing
	st.CreatedAt, st.UpdatedAt = existing.CreatedAt, existing.UpdatedAt
	return nil
}

func (r *StaffStore) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.staff[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.staff, id)
	for cid, c := range r.s.complaints {
		if c.IsAssignedTo(id) {
			c.AssignedStaffID = nil
			r.s.complaints[cid] = c
		}
	}
	return nil
}

// ─── Complaints ────────────────────────────────────────────────────────

type ComplaintStore struct{ s *Store }

// joined must be called with the lock held.
func (r *ComplaintStore) joined(c model.Complaint) model.Complaint {
	if st, ok := r.s.students[c.StudentID]; ok {
		c.Student = &model.StudentSummary{ID: st.ID, Name: st.Name, RollNumber: st.RollNumber}
	}
	c.AssignedStaff = nil
	if c.AssignedStaffID != nil {
		if st, ok := r.s.staff[*c.AssignedStaffID]; ok {
			c.AssignedStaff = &model.StaffSummary{ID: st.ID, Name: st.Name, Role: st.Role}
		}
	}
	c.Image.Data = append([]byte(nil), c.Image.Data...)
	return c
}

func (r *ComplaintStore) filter(keep func(model.Complaint) bool, less func(a, b model.Complaint) bool) []model.Complaint {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []model.Complaint{}
	for _, c := range r.s.complaints {
		if keep(c) {
			out = append(out, r.joined(c))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func newestCreated(a, b model.Complaint) bool { return a.CreatedAt.After(b.CreatedAt) }
func newestUpdated(a, b model.Complaint) bool { return a.UpdatedAt.After(b.UpdatedAt) }

func (r *ComplaintStore) Create(_ context.Context, c *model.Complaint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.students[c.StudentID]; !ok {
		return repository.ErrReferenceMissing
	}
	now := r.s.Now()
	c.ID = uuid.New()
	c.Status = model.StatusSubmitted
	c.AssignedStaffID = nil
	c.Remarks = ""
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.complaints[c.ID] = *c
	return nil
}

func (r *ComplaintStore) GetByID(_ context.Context, id uuid.UUID) (*model.Complaint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.complaints[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c = r.joined(c)
	return &c, nil
}

func (r *ComplaintStore) ListByStudent(_ context.Context, studentID uuid.UUID) ([]model.Complaint, error) {
	return r.filter(func(c model.Complaint) bool { return c.StudentID == studentID }, newestCreated), nil
}

func (r *ComplaintStore) ListAll(_ context.Context) ([]model.Complaint, error) {
	return r.filter(func(model.Complaint) bool { return true }, newestCreated), nil
}

func (r *ComplaintStore) ListActiveByStaff(_ context.Context, staffID uuid.UUID) ([]model.Complaint, error) {
	return r.filter(func(c model.Complaint) bool {
		return c.IsAssignedTo(staffID) && c.Status != model.StatusResolved
	}, newestCreated), nil
}

func (r *ComplaintStore) ListResolvedByStaff(_ context.Context, staffID uuid.UUID) ([]model.Complaint, error) {
	return r.filter(func(c model.Complaint) bool {
		return c.IsAssignedTo(staffID) && c.Status == model.StatusResolved
	}, newestUpdated), nil
}

func (r *ComplaintStore) Assign(_ context.Context, id, staffID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.complaints[id]
	if !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.s.staff[staffID]; !ok {
		return repository.ErrReferenceMissing
	}
	assignee := staffID
	c.AssignedStaffID = &assignee
	c.Status = model.StatusInProgress
	c.UpdatedAt = r.s.Now()
	r.s.complaints[id] = c
	return nil
}

func (r *ComplaintStore) UpdateStatus(_ context.Context, id, staffID uuid.UUID, status model.ComplaintStatus, remarks string) (time.Time, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.complaints[id]
	if !ok || !c.IsAssignedTo(staffID) {
		return time.Time{}, repository.ErrNotFound
	}
	c.Status = status
	c.Remarks = remarks
	c.UpdatedAt = r.s.Now()
	r.s.complaints[id] = c
	return c.UpdatedAt, nil
}

func (r *ComplaintStore) CountStats(_ context.Context) (total, resolved int, err error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.complaints {
		total++
		if c.Status == model.StatusResolved {
			resolved++
		}
	}
	return total, resolved, nil
}
