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

// StaffPortalHandler serves the assigned-complaint queue to staff.
type StaffPortalHandler struct {
	complaintService *service.ComplaintService
}

// NewStaffPortalHandler creates a new StaffPortalHandler.
func NewStaffPortalHandler(complaintService *service.ComplaintService) *StaffPortalHandler {
	return &StaffPortalHandler{complaintService: complaintService}
}

// ListActive godoc
// GET /api/staff/complaints/active
func (h *StaffPortalHandler) ListActive(c *gin.Context) {
	staffID, ok := middleware.CallerID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	complaints, err := h.complaintService.ListActiveForStaff(c.Request.Context(), staffID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"complaints": complaints})
}

// ListResolved godoc
// GET /api/staff/complaints/resolved
func (h *StaffPortalHandler) ListResolved(c *gin.Context) {
	staffID, ok := middleware.CallerID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	complaints, err := h.complaintService.ListResolvedForStaff(c.Request.Context(), staffID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"complaints": complaints})
}

// UpdateStatus godoc
// PUT /api/staff/complaints/:id/status
// Moves an assigned complaint to In Progress or Resolved (remarks required).
func (h *StaffPortalHandler) UpdateStatus(c *gin.Context) {
	staffID, ok := middleware.CallerID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateComplaintStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	complaint, err := h.complaintService.UpdateStatus(c.Request.Context(), staffID, id, req.Status, req.Remarks)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"complaint": complaint})
}
