package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/response"
	"github.com/hostelcare/complaints-backend/internal/service"
	"github.com/hostelcare/complaints-backend/internal/validator"
)

// StaffManagementHandler handles admin CRUD over the staff directory.
type StaffManagementHandler struct {
	staffService *service.StaffService
}

// NewStaffManagementHandler creates a new StaffManagementHandler.
func NewStaffManagementHandler(staffService *service.StaffService) *StaffManagementHandler {
	return &StaffManagementHandler{staffService: staffService}
}

// ListStaff godoc
// GET /api/admin/staff?category=Electrical
// Lists staff. With a category, only the suggested specialty is returned
// (Other returns everyone). Password hashes are never serialised.
func (h *StaffManagementHandler) ListStaff(c *gin.Context) {
	category := model.ComplaintCategory(c.Query("category"))

	staff, err := h.staffService.List(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}

	data := gin.H{"staff": staff}
	if role, ok := model.SuggestedStaffRole(category); ok {
		data["suggested_role"] = role
	}
	response.Success(c, http.StatusOK, data)
}

// CreateStaff godoc
// POST /api/admin/staff
func (h *StaffManagementHandler) CreateStaff(c *gin.Context) {
	var req model.CreateStaffRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	staff, err := h.staffService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"staff": staff})
}

// UpdateStaff godoc
// PUT /api/admin/staff/:id
// Replaces staff details; an optional password rotates their credential.
func (h *StaffManagementHandler) UpdateStaff(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateStaffRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	staff, err := h.staffService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"staff": staff})
}

// DeleteStaff godoc
// DELETE /api/admin/staff/:id
// Hard delete. Complaints assigned to the staff member become unassigned.
func (h *StaffManagementHandler) DeleteStaff(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.staffService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Staff member removed"})
}
