package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/repository/memstore"
	"github.com/hostelcare/complaints-backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminEmail    = "warden@hostel.local"
	testAdminPassword = "warden-secret"
	testJWTSecret     = "test-jwt-secret"
	testMaxImage      = 64 * 1024
)

// pngPixel is a valid 1x1 PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

type fixture struct {
	store      *memstore.Store
	hasher     *service.PasswordHasher
	auth       *service.AuthService
	students   *service.StudentService
	staff      *service.StaffService
	complaints *service.ComplaintService
}

// newFixture wires every service over a fresh memstore. The store clock
// advances one second per write so orderings are deterministic.
func newFixture(t *testing.T, cache service.StatsCache) *fixture {
	t.Helper()

	store := memstore.New()
	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store.Now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	hasher := service.NewPasswordHasher(bcrypt.MinCost)
	auth, err := service.NewAuthService(service.AuthConfig{
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
		AdminName:     "Warden",
		JWTSecret:     testJWTSecret,
		TokenTTL:      time.Hour,
	}, store.Staff(), store.Students(), hasher)
	require.NoError(t, err)

	return &fixture{
		store:      store,
		hasher:     hasher,
		auth:       auth,
		students:   service.NewStudentService(store.Students(), hasher),
		staff:      service.NewStaffService(store.Staff(), hasher, zerolog.Nop()),
		complaints: service.NewComplaintService(store.Complaints(), cache, testMaxImage, zerolog.Nop()),
	}
}

func (f *fixture) registerStudent(t *testing.T, roll, email string) *model.Student {
	t.Helper()
	student, err := f.students.Register(context.Background(), model.RegisterStudentRequest{
		RollNumber: roll,
		Name:       "Student " + roll,
		Email:      email,
		Password:   "student-pass",
	})
	require.NoError(t, err)
	return student
}

func (f *fixture) createStaff(t *testing.T, staffID, email, role string) *model.Staff {
	t.Helper()
	staff, err := f.staff.Create(context.Background(), model.CreateStaffRequest{
		StaffID:  staffID,
		Name:     "Staff " + staffID,
		Email:    email,
		Role:     role,
		Password: "staff-pass",
	})
	require.NoError(t, err)
	return staff
}

func (f *fixture) submit(t *testing.T, studentID uuid.UUID, category model.ComplaintCategory) *model.Complaint {
	t.Helper()
	complaint, err := f.complaints.Submit(context.Background(), studentID, service.SubmitComplaintInput{
		Category:    category,
		Description: string(category) + " issue in room 12",
		ImageData:   pngPixel,
	})
	require.NoError(t, err)
	return complaint
}
