package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/response"
	"github.com/hostelcare/complaints-backend/internal/service"
	"github.com/hostelcare/complaints-backend/internal/validator"
)

// AdminComplaintHandler handles the admin complaint dashboard.
type AdminComplaintHandler struct {
	complaintService *service.ComplaintService
}

// NewAdminComplaintHandler creates a new AdminComplaintHandler.
func NewAdminComplaintHandler(complaintService *service.ComplaintService) *AdminComplaintHandler {
	return &AdminComplaintHandler{complaintService: complaintService}
}

// ListComplaints godoc
// GET /api/admin/complaints
func (h *AdminComplaintHandler) ListComplaints(c *gin.Context) {
	complaints, err := h.complaintService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"complaints": complaints})
}

// GetComplaint godoc
// GET /api/admin/complaints/:id
func (h *AdminComplaintHandler) GetComplaint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	complaint, err := h.complaintService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"complaint": complaint})
}

// GetStats godoc
// GET /api/admin/complaints/stats
// Returns total, resolved and pending counts for the dashboard chart.
func (h *AdminComplaintHandler) GetStats(c *gin.Context) {
	stats, err := h.complaintService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// AssignComplaint godoc
// PUT /api/admin/complaints/:id/assign
// Assigns the complaint to any staff member and marks it In Progress.
func (h *AdminComplaintHandler) AssignComplaint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.AssignComplaintRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	complaint, err := h.complaintService.Assign(c.Request.Context(), id, uuid.MustParse(req.StaffID))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"complaint": complaint})
}
