package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StaffRepository handles staff data access.
type StaffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository.
func NewStaffRepository(pool *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{pool: pool}
}

const staffColumns = `id, staff_id, name, email, role, password_hash, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStaff(row rowScanner) (*model.Staff, error) {
	s := &model.Staff{}
	if err := row.Scan(&s.ID, &s.StaffID, &s.Name, &s.Email, &s.Role, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	return s, nil
}

// GetByID retrieves a staff member by ID.
func (r *StaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Staff, error) {
	return scanStaff(r.pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id))
}

// GetByEmail retrieves a staff member by their unique email.
func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*model.Staff, error) {
	return scanStaff(r.pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE email = $1`, email))
}

// List retrieves staff ordered by name. A non-empty role restricts the result
// to that specialty (case-insensitive).
func (r *StaffRepository) List(ctx context.Context, role string) ([]model.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff`
	var args []interface{}
	if role != "" {
		query += ` WHERE LOWER(role) = LOWER($1)`
		args = append(args, role)
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := []model.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, *s)
	}
	return staff, rows.Err()
}

// Create inserts a new staff member.
func (r *StaffRepository) Create(ctx context.Context, s *model.Staff) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO staff (staff_id, name, email, role, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.StaffID, s.Name, s.Email, s.Role, s.PasswordHash,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return translate(err)
}

// Update modifies a staff member's details. An empty PasswordHash keeps the
// stored one.
func (r *StaffRepository) Update(ctx context.Context, s *model.Staff) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE staff
		 SET staff_id = $1, name = $2, email = $3, role = $4,
		     password_hash = COALESCE(NULLIF($5, ''), password_hash), updated_at = NOW()
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		s.StaffID, s.Name, s.Email, s.Role, s.PasswordHash, s.ID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	return translate(err)
}

// Delete removes a staff member. Complaints assigned to them keep their status
// and lose the assignment (ON DELETE SET NULL).
func (r *StaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
