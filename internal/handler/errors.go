package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/response"
	"github.com/hostelcare/complaints-backend/internal/service"
)

// respondError maps service errors onto the API error taxonomy. Anything
// unrecognised is recorded on the context for the request logger and
// returned as a bare 500.
func respondError(c *gin.Context, err error) {
	var fieldErr *service.FieldError
	switch {
	case errors.As(err, &fieldErr):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{fieldErr.Field: fieldErr.Message})
	case errors.Is(err, service.ErrImageRequired):
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
	case errors.Is(err, service.ErrImageTooLarge):
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
	case errors.Is(err, service.ErrUnsupportedImage):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	case errors.Is(err, service.ErrValidation):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrTokenInvalid):
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
	case errors.Is(err, service.ErrNotAssigned):
		response.Fail(c, http.StatusForbidden, response.ErrNotAssigned)
	case errors.Is(err, service.ErrComplaintNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrComplaintNotFound)
	case errors.Is(err, service.ErrStaffNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrStaffNotFound)
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrConflict):
		response.Fail(c, http.StatusBadRequest, response.ErrConflict)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// parseIDParam reads a UUID path parameter, replying 400 INVALID_ID on failure.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
