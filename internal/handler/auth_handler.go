package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostelcare/complaints-backend/internal/middleware"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/response"
	"github.com/hostelcare/complaints-backend/internal/service"
	"github.com/hostelcare/complaints-backend/internal/validator"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService    *service.AuthService
	studentService *service.StudentService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, studentService *service.StudentService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		studentService: studentService,
	}
}

// Register godoc
// POST /api/auth/register
// Creates a student account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Student registered successfully!",
		"student": student,
	})
}

// Login godoc
// POST /api/auth/login
// Resolves admin, staff or student credentials and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, identity, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  identity,
	})
}

// Me godoc
// GET /api/auth/me
// Returns the identity carried by the caller's token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":       claims.User,
		"expires_at": claims.ExpiresAt,
	})
}
