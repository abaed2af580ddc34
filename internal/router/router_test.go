package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/config"
	"github.com/hostelcare/complaints-backend/internal/handler"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/repository/memstore"
	"github.com/hostelcare/complaints-backend/internal/router"
	"github.com/hostelcare/complaints-backend/internal/service"
	"github.com/hostelcare/complaints-backend/internal/validator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "warden@hostel.local"
	adminPassword = "warden-secret"
)

var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Setup()
	os.Exit(m.Run())
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
	Metadata struct {
		RequestID string `json:"request_id"`
		Timestamp string `json:"timestamp"`
	} `json:"metadata"`
}

type complaintBody struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	AssignedStaffID string `json:"assigned_staff_id"`
	Remarks         string `json:"remarks"`
	Image           struct {
		ContentType string `json:"content_type"`
		Data        []byte `json:"data"`
	} `json:"image"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	auth   *service.AuthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		GinMode:         gin.TestMode,
		JWTSecret:       "router-test-secret",
		JWTExpiry:       time.Hour,
		AdminEmail:      adminEmail,
		AdminPassword:   adminPassword,
		AdminName:       "Warden",
		MaxUploadSizeMB: 1,
	}
	log := zerolog.Nop()
	store := memstore.New()
	hasher := service.NewPasswordHasher(bcrypt.MinCost)

	authService, err := service.NewAuthService(service.AuthConfig{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		AdminName:     cfg.AdminName,
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.JWTExpiry,
	}, store.Staff(), store.Students(), hasher)
	require.NoError(t, err)

	complaintService := service.NewComplaintService(store.Complaints(), nil, cfg.MaxUploadBytes(), log)
	handlers := &router.Handlers{
		Auth:           handler.NewAuthHandler(authService, service.NewStudentService(store.Students(), hasher)),
		Complaint:      handler.NewComplaintHandler(complaintService, cfg.MaxUploadBytes()),
		AdminComplaint: handler.NewAdminComplaintHandler(complaintService),
		StaffMgmt:      handler.NewStaffManagementHandler(service.NewStaffService(store.Staff(), hasher, log)),
		StaffPortal:    handler.NewStaffPortalHandler(complaintService),
	}

	return &testServer{t: t, engine: router.SetupRouter(authService, handlers, cfg, log), auth: authService}
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) json(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Auth-Token", token)
	}
	return decode(s.t, s.serve(req))
}

func (s *testServer) submit(token string, fields map[string]string, filename string, image []byte) (int, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(s.t, mw.WriteField(k, v))
	}
	if image != nil {
		part, err := mw.CreateFormFile("image", filename)
		require.NoError(s.t, err)
		_, err = part.Write(image)
		require.NoError(s.t, err)
	}
	require.NoError(s.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/complaints", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Auth-Token", token)
	return decode(s.t, s.serve(req))
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	status, env := s.json(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(s.t, http.StatusOK, status, "login %s: %+v", email, env.Error)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	return data.Token
}

func (s *testServer) registerStudent(roll, email string) string {
	s.t.Helper()
	status, _ := s.json(http.MethodPost, "/api/auth/register", "", map[string]string{
		"roll_number": roll, "name": "Student " + roll, "email": email, "password": "student-pass",
	})
	require.Equal(s.t, http.StatusCreated, status)
	return s.login(email, "student-pass")
}

func (s *testServer) createStaff(adminToken, staffID, email, role string) (id, token string) {
	s.t.Helper()
	status, env := s.json(http.MethodPost, "/api/admin/staff", adminToken, map[string]string{
		"staff_id": staffID, "name": "Staff " + staffID, "email": email, "role": role, "password": "staff-pass",
	})
	require.Equal(s.t, http.StatusCreated, status)
	var data struct {
		Staff struct {
			ID string `json:"id"`
		} `json:"staff"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	return data.Staff.ID, s.login(email, "staff-pass")
}

func (s *testServer) submitComplaint(token, category string) complaintBody {
	s.t.Helper()
	status, env := s.submit(token, map[string]string{
		"category": category, "description": "Something broke",
	}, "photo.png", pngPixel)
	require.Equal(s.t, http.StatusCreated, status, "%+v", env.Error)
	var data struct {
		Complaint complaintBody `json:"complaint"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	return data.Complaint
}

func decode(t *testing.T, w *httptest.ResponseRecorder) (int, envelope) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w.Code, env
}

func errorCode(env envelope) string {
	if env.Error == nil {
		return ""
	}
	return env.Error.Code
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	status, env := s.json(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Metadata.RequestID)
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", id)
	w := s.serve(req)
	_, env := decode(t, w)
	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
	assert.Equal(t, id, env.Metadata.RequestID)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "not-a-uuid")
	w = s.serve(req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get("X-Request-ID"))
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)
	body := map[string]string{
		"roll_number": "H0001", "name": "Asha", "email": "asha@hostel.local", "password": "secret1",
	}

	status, env := s.json(http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, status)
	assert.NotContains(t, string(env.Data), "password")

	status, env = s.json(http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CONFLICT", errorCode(env))

	status, env = s.json(http.MethodPost, "/api/auth/register", "", map[string]string{
		"roll_number": "H0002", "name": "Bo", "email": "not-an-email", "password": "1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(env))
	assert.Contains(t, env.Error.Fields, "email")
	assert.Contains(t, env.Error.Fields, "password")
}

func TestPasswordOverBcryptLimit(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)

	tests := []struct {
		name     string
		password string
		roll     string
		staffID  string
	}{
		{"73 ascii bytes", strings.Repeat("a", 73), "H1001", "LG-1"},
		{"40 runes over 72 bytes", strings.Repeat("é", 40), "H1002", "LG-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := s.json(http.MethodPost, "/api/auth/register", "", map[string]string{
				"roll_number": tt.roll, "name": "Asha", "email": tt.roll + "@hostel.local", "password": tt.password,
			})
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "VALIDATION_ERROR", errorCode(env))
			assert.Contains(t, env.Error.Fields, "password")

			status, env = s.json(http.MethodPost, "/api/admin/staff", adminToken, map[string]string{
				"staff_id": tt.staffID, "name": "Long", "email": tt.staffID + "@hostel.local",
				"role": "Cleaner", "password": tt.password,
			})
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "VALIDATION_ERROR", errorCode(env))
			assert.Contains(t, env.Error.Fields, "password")
		})
	}
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	s.registerStudent("H0001", "asha@hostel.local")

	status, env := s.json(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "asha@hostel.local", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(env))

	status, env = s.json(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "asha@hostel.local"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(env))

	status, env = s.json(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": adminEmail, "password": adminPassword,
	})
	require.Equal(t, http.StatusOK, status)
	var data struct {
		User struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "admin", data.User.Role)
	assert.Equal(t, service.AdminPrincipalID, data.User.ID)
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t)
	token := s.registerStudent("H0001", "asha@hostel.local")

	status, env := s.json(http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "TOKEN_REQUIRED", errorCode(env))

	status, env = s.json(http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "TOKEN_INVALID", errorCode(env))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	status, env = decode(t, s.serve(req))
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"role":"student"`)
}

func TestRoleGates(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)
	studentToken := s.registerStudent("H0001", "asha@hostel.local")
	_, staffToken := s.createStaff(adminToken, "EL-1", "ravi@hostel.local", "Electrician")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		code   string
	}{
		{"student on admin", http.MethodGet, "/api/admin/complaints", studentToken, "ADMIN_ACCESS_ONLY"},
		{"staff on admin", http.MethodGet, "/api/admin/staff", staffToken, "ADMIN_ACCESS_ONLY"},
		{"admin on staff", http.MethodGet, "/api/staff/complaints/active", adminToken, "STAFF_ACCESS_ONLY"},
		{"student on staff", http.MethodGet, "/api/staff/complaints/resolved", studentToken, "STAFF_ACCESS_ONLY"},
		{"admin on student", http.MethodGet, "/api/complaints/my-complaints", adminToken, "STUDENT_ACCESS_ONLY"},
		{"staff on student", http.MethodGet, "/api/complaints/my-complaints", staffToken, "STUDENT_ACCESS_ONLY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := s.json(tt.method, tt.path, tt.token, nil)
			assert.Equal(t, http.StatusForbidden, status)
			assert.Equal(t, tt.code, errorCode(env))
		})
	}
}

func TestSubmitComplaint(t *testing.T) {
	s := newTestServer(t)
	token := s.registerStudent("H0001", "asha@hostel.local")
	valid := map[string]string{"category": "Plumbing", "description": "Tap leaking"}

	complaint := s.submitComplaint(token, "Plumbing")
	assert.Equal(t, "Submitted", complaint.Status)
	assert.Empty(t, complaint.AssignedStaffID)
	assert.Equal(t, "image/png", complaint.Image.ContentType)
	assert.Equal(t, pngPixel, complaint.Image.Data)

	tests := []struct {
		name     string
		fields   map[string]string
		filename string
		image    []byte
		code     string
	}{
		{"missing image", valid, "", nil, "FILE_REQUIRED"},
		{"text file", valid, "notes.png", []byte("definitely not a picture"), "UNSUPPORTED_FILE_TYPE"},
		{"oversized", valid, "huge.png", append(append([]byte{}, pngPixel...), make([]byte, 1<<20)...), "FILE_TOO_LARGE"},
		{"bad category", map[string]string{"category": "Carpentry", "description": "Door"}, "door.png", pngPixel, "VALIDATION_ERROR"},
		{"no description", map[string]string{"category": "Other"}, "x.png", pngPixel, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := s.submit(token, tt.fields, tt.filename, tt.image)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.code, errorCode(env))
		})
	}

	status, env := s.json(http.MethodGet, "/api/complaints/my-complaints", token, nil)
	require.Equal(t, http.StatusOK, status)
	var data struct {
		Complaints []complaintBody `json:"complaints"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Complaints, 1)
	assert.Equal(t, complaint.ID, data.Complaints[0].ID)
}

func TestSubmitComplaint_StudentRecordGone(t *testing.T) {
	s := newTestServer(t)
	token, err := s.auth.IssueToken(model.Identity{ID: uuid.NewString(), Name: "Ghost", Role: model.RoleStudent})
	require.NoError(t, err)

	status, env := s.submit(token, map[string]string{
		"category": "Other", "description": "Window latch",
	}, "photo.png", pngPixel)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "TOKEN_INVALID", errorCode(env))
}

func TestAdminComplaintEndpoints(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)
	studentToken := s.registerStudent("H0001", "asha@hostel.local")
	staffID, _ := s.createStaff(adminToken, "EL-1", "ravi@hostel.local", "Electrician")
	complaint := s.submitComplaint(studentToken, "Electrical")

	status, env := s.json(http.MethodGet, "/api/admin/complaints/not-a-uuid", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ID", errorCode(env))

	status, env = s.json(http.MethodGet, "/api/admin/complaints/"+uuid.NewString(), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "COMPLAINT_NOT_FOUND", errorCode(env))

	status, env = s.json(http.MethodPut, "/api/admin/complaints/"+complaint.ID+"/assign", adminToken,
		map[string]string{"staff_id": uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "STAFF_NOT_FOUND", errorCode(env))

	status, env = s.json(http.MethodPut, "/api/admin/complaints/"+complaint.ID+"/assign", adminToken,
		map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(env))

	status, env = s.json(http.MethodPut, "/api/admin/complaints/"+complaint.ID+"/assign", adminToken,
		map[string]string{"staff_id": staffID})
	require.Equal(t, http.StatusOK, status)
	var assigned struct {
		Complaint complaintBody `json:"complaint"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &assigned))
	assert.Equal(t, "In Progress", assigned.Complaint.Status)
	assert.Equal(t, staffID, assigned.Complaint.AssignedStaffID)

	status, env = s.json(http.MethodGet, "/api/admin/complaints", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"roll_number":"H0001"`)
	assert.Contains(t, string(env.Data), `"role":"Electrician"`)

	status, env = s.json(http.MethodGet, "/api/admin/complaints/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"total":1,"resolved":0,"pending":1}`, string(env.Data))
}

func TestStaffManagementEndpoints(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)
	elID, _ := s.createStaff(adminToken, "EL-1", "ravi@hostel.local", "Electrician")
	s.createStaff(adminToken, "PL-1", "arjun@hostel.local", "Plumber")

	status, env := s.json(http.MethodGet, "/api/admin/staff?category=Electrical", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	var list struct {
		Staff []struct {
			ID string `json:"id"`
		} `json:"staff"`
		SuggestedRole string `json:"suggested_role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Staff, 1)
	assert.Equal(t, elID, list.Staff[0].ID)
	assert.Equal(t, "Electrician", list.SuggestedRole)
	assert.NotContains(t, string(env.Data), "password")

	status, env = s.json(http.MethodGet, "/api/admin/staff?category=Carpentry", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(env))

	status, env = s.json(http.MethodPost, "/api/admin/staff", adminToken, map[string]string{
		"staff_id": "EL-1", "name": "Dup", "email": "dup@hostel.local", "role": "Electrician", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "CONFLICT", errorCode(env))

	status, _ = s.json(http.MethodPut, "/api/admin/staff/"+elID, adminToken, map[string]string{
		"staff_id": "EL-1", "name": "Ravi K", "email": "ravi@hostel.local", "role": "Electrician", "password": "rotated1",
	})
	require.Equal(t, http.StatusOK, status)
	s.login("ravi@hostel.local", "rotated1")

	// A rejected password leaves the other fields untouched.
	status, env = s.json(http.MethodPut, "/api/admin/staff/"+elID, adminToken, map[string]string{
		"staff_id": "EL-1", "name": "Renamed", "email": "ravi@hostel.local", "role": "Plumber",
		"password": strings.Repeat("é", 45),
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(env))
	status, env = s.json(http.MethodGet, "/api/admin/staff", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotContains(t, string(env.Data), "Renamed")
	s.login("ravi@hostel.local", "rotated1")

	status, env = s.json(http.MethodDelete, "/api/admin/staff/"+elID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = s.json(http.MethodDelete, "/api/admin/staff/"+elID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "STAFF_NOT_FOUND", errorCode(env))
}

func TestStaffPortalEndpoints(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)
	studentToken := s.registerStudent("H0001", "asha@hostel.local")
	ownerID, ownerToken := s.createStaff(adminToken, "CL-1", "lakshmi@hostel.local", "Cleaner")
	_, otherToken := s.createStaff(adminToken, "CL-2", "devi@hostel.local", "Cleaner")
	complaint := s.submitComplaint(studentToken, "Cleanliness")

	status, _ := s.json(http.MethodPut, "/api/admin/complaints/"+complaint.ID+"/assign", adminToken,
		map[string]string{"staff_id": ownerID})
	require.Equal(t, http.StatusOK, status)

	statusPath := "/api/staff/complaints/" + complaint.ID + "/status"

	status, env := s.json(http.MethodPut, statusPath, otherToken, map[string]string{"status": "Resolved", "remarks": "done"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "NOT_ASSIGNED", errorCode(env))

	status, env = s.json(http.MethodPut, statusPath, ownerToken, map[string]string{"status": "Resolved"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(env))
	assert.Contains(t, env.Error.Fields, "remarks")

	status, env = s.json(http.MethodPut, statusPath, ownerToken, map[string]string{"status": "Submitted"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error.Fields, "status")

	status, env = s.json(http.MethodPut, "/api/staff/complaints/"+uuid.NewString()+"/status", ownerToken,
		map[string]string{"status": "In Progress"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "COMPLAINT_NOT_FOUND", errorCode(env))

	status, env = s.json(http.MethodGet, "/api/staff/complaints/active", ownerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), complaint.ID)

	status, env = s.json(http.MethodPut, statusPath, ownerToken, map[string]string{"status": "Resolved", "remarks": "Corridor cleaned"})
	require.Equal(t, http.StatusOK, status)
	var resolved struct {
		Complaint complaintBody `json:"complaint"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resolved))
	assert.Equal(t, "Resolved", resolved.Complaint.Status)
	assert.Equal(t, "Corridor cleaned", resolved.Complaint.Remarks)

	status, env = s.json(http.MethodGet, "/api/staff/complaints/active", ownerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"complaints":[]}`, string(env.Data))

	status, env = s.json(http.MethodGet, "/api/staff/complaints/resolved", ownerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), complaint.ID)
}

func TestBrotliCompression(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.login(adminEmail, adminPassword)
	studentToken := s.registerStudent("H0001", "asha@hostel.local")
	for i := 0; i < 5; i++ {
		s.submitComplaint(studentToken, "Other")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/complaints", nil)
	req.Header.Set("X-Auth-Token", adminToken)
	req.Header.Set("Accept-Encoding", "gzip, br")
	w := s.serve(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "br", w.Header().Get("Content-Encoding"))

	plain, err := io.ReadAll(brotli.NewReader(w.Body))
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(plain, &env))
	var data struct {
		Complaints []complaintBody `json:"complaints"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Complaints, 5)

	// Short bodies go out uncompressed.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept-Encoding", "br")
	w = s.serve(req)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
}

func TestNoRoute(t *testing.T) {
	s := newTestServer(t)
	status, env := s.json(http.MethodGet, "/api/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(env))
}
