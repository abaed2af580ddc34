package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostelcare/complaints-backend/internal/middleware"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/response"
	"github.com/hostelcare/complaints-backend/internal/service"
	"github.com/hostelcare/complaints-backend/internal/validator"
)

// multipartOverhead is the slack allowed on top of the image for form fields
// and part headers.
const multipartOverhead = 1 << 20

// ComplaintHandler handles the student-facing complaint endpoints.
type ComplaintHandler struct {
	complaintService *service.ComplaintService
	maxUploadBytes   int64
}

// NewComplaintHandler creates a new ComplaintHandler.
func NewComplaintHandler(complaintService *service.ComplaintService, maxUploadBytes int64) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		maxUploadBytes:   maxUploadBytes,
	}
}

// SubmitComplaint godoc
// POST /api/complaints
// Multipart form: category, description, image.
func (h *ComplaintHandler) SubmitComplaint(c *gin.Context) {
	studentID, ok := middleware.CallerID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
			return
		}
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"detail": err.Error()})
		return
	}

	var form model.SubmitComplaintForm
	if fields := validator.BindForm(c, &form); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	if header.Size > h.maxUploadBytes {
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		respondError(c, err)
		return
	}

	complaint, err := h.complaintService.Submit(c.Request.Context(), studentID, service.SubmitComplaintInput{
		Category:    form.Category,
		Description: form.Description,
		ImageData:   data,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"complaint": complaint})
}

// ListMyComplaints godoc
// GET /api/complaints/my-complaints
// Returns the caller's complaints, newest first.
func (h *ComplaintHandler) ListMyComplaints(c *gin.Context) {
	studentID, ok := middleware.CallerID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	complaints, err := h.complaintService.ListForStudent(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"complaints": complaints})
}
