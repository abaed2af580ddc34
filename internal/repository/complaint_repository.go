package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ComplaintRepository handles complaint data access.
type ComplaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository creates a new ComplaintRepository.
func NewComplaintRepository(pool *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{pool: pool}
}

// complaintSelect joins the owning student and, when present, the assigned staff.
const complaintSelect = `
	SELECT c.id, c.student_id, c.category, c.description, c.image_data, c.image_content_type,
	       c.status, c.assigned_staff_id, c.remarks, c.created_at, c.updated_at,
	       s.name, s.roll_number, st.name, st.role
	FROM complaints c
	JOIN students s ON s.id = c.student_id
	LEFT JOIN staff st ON st.id = c.assigned_staff_id`

func scanComplaint(row rowScanner) (*model.Complaint, error) {
	var (
		c                    model.Complaint
		student              model.StudentSummary
		staffName, staffRole *string
	)
	err := row.Scan(
		&c.ID, &c.StudentID, &c.Category, &c.Description, &c.Image.Data, &c.Image.ContentType,
		&c.Status, &c.AssignedStaffID, &c.Remarks, &c.CreatedAt, &c.UpdatedAt,
		&student.Name, &student.RollNumber, &staffName, &staffRole,
	)
	if err != nil {
		return nil, translate(err)
	}

	student.ID = c.StudentID
	c.Student = &student
	if c.AssignedStaffID != nil && staffName != nil {
		c.AssignedStaff = &model.StaffSummary{ID: *c.AssignedStaffID, Name: *staffName}
		if staffRole != nil {
			c.AssignedStaff.Role = *staffRole
		}
	}
	return &c, nil
}

func (r *ComplaintRepository) list(ctx context.Context, where, orderBy string, args ...interface{}) ([]model.Complaint, error) {
	query := complaintSelect
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY ` + orderBy

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := []model.Complaint{}
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, *c)
	}
	return complaints, rows.Err()
}

// Create inserts a new complaint. Status, assignment and remarks take their
// column defaults.
func (r *ComplaintRepository) Create(ctx context.Context, c *model.Complaint) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO complaints (student_id, category, description, image_data, image_content_type)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, status, assigned_staff_id, remarks, created_at, updated_at`,
		c.StudentID, c.Category, c.Description, c.Image.Data, c.Image.ContentType,
	).Scan(&c.ID, &c.Status, &c.AssignedStaffID, &c.Remarks, &c.CreatedAt, &c.UpdatedAt)
	return translate(err)
}

// GetByID retrieves a complaint with its joins.
func (r *ComplaintRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Complaint, error) {
	return scanComplaint(r.pool.QueryRow(ctx, complaintSelect+` WHERE c.id = $1`, id))
}

// ListByStudent returns a student's complaints, newest first.
func (r *ComplaintRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Complaint, error) {
	return r.list(ctx, `c.student_id = $1`, `c.created_at DESC`, studentID)
}

// ListAll returns every complaint, newest first.
func (r *ComplaintRepository) ListAll(ctx context.Context) ([]model.Complaint, error) {
	return r.list(ctx, "", `c.created_at DESC`)
}

// ListActiveByStaff returns unresolved complaints assigned to staffID, newest first.
func (r *ComplaintRepository) ListActiveByStaff(ctx context.Context, staffID uuid.UUID) ([]model.Complaint, error) {
	return r.list(ctx, `c.assigned_staff_id = $1 AND c.status <> $2`, `c.created_at DESC`,
		staffID, model.StatusResolved)
}

// ListResolvedByStaff returns complaints staffID resolved, most recently updated first.
func (r *ComplaintRepository) ListResolvedByStaff(ctx context.Context, staffID uuid.UUID) ([]model.Complaint, error) {
	return r.list(ctx, `c.assigned_staff_id = $1 AND c.status = $2`, `c.updated_at DESC`,
		staffID, model.StatusResolved)
}

// Assign points a complaint at staffID and marks it In Progress, overwriting
// any previous assignment. Returns ErrNotFound for an unknown complaint and
// ErrReferenceMissing for an unknown staff member.
func (r *ComplaintRepository) Assign(ctx context.Context, id, staffID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE complaints SET assigned_staff_id = $1, status = $2, updated_at = NOW()
		 WHERE id = $3`,
		staffID, model.StatusInProgress, id,
	)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus sets status and remarks only while the complaint is still
// assigned to staffID. Returns ErrNotFound when no row matched.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id, staffID uuid.UUID, status model.ComplaintStatus, remarks string) (time.Time, error) {
	var updatedAt time.Time
	err := r.pool.QueryRow(ctx,
		`UPDATE complaints SET status = $1, remarks = $2, updated_at = NOW()
		 WHERE id = $3 AND assigned_staff_id = $4
		 RETURNING updated_at`,
		status, remarks, id, staffID,
	).Scan(&updatedAt)
	return updatedAt, translate(err)
}

// CountStats returns the total number of complaints and how many are resolved.
func (r *ComplaintRepository) CountStats(ctx context.Context) (total, resolved int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1) FROM complaints`,
		model.StatusResolved,
	).Scan(&total, &resolved)
	return
}
