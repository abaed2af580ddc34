package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden         ErrCode = "FORBIDDEN"
	ErrAdminAccessOnly   ErrCode = "ADMIN_ACCESS_ONLY"
	ErrStaffAccessOnly   ErrCode = "STAFF_ACCESS_ONLY"
	ErrStudentAccessOnly ErrCode = "STUDENT_ACCESS_ONLY"
	ErrNotAssigned       ErrCode = "NOT_ASSIGNED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrComplaintNotFound ErrCode = "COMPLAINT_NOT_FOUND"
	ErrStaffNotFound     ErrCode = "STAFF_NOT_FOUND"
	ErrConflict          ErrCode = "CONFLICT"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid credentials."
	case ErrTokenRequired:
		return "No token, authorization denied."
	case ErrTokenInvalid:
		return "Token is not valid."

	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrAdminAccessOnly:
		return "Access denied. Admin privileges required."
	case ErrStaffAccessOnly:
		return "Access denied. Staff privileges required."
	case ErrStudentAccessOnly:
		return "Access denied. Student privileges required."
	case ErrNotAssigned:
		return "This complaint is not assigned to you."

	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."

	case ErrNotFound:
		return "Resource not found."
	case ErrComplaintNotFound:
		return "Complaint not found."
	case ErrStaffNotFound:
		return "Staff member not found."
	case ErrConflict:
		return "A record with the same unique field already exists."

	case ErrFileRequired:
		return "Image is required."
	case ErrUnsupportedFile:
		return "Only image uploads are accepted."
	case ErrFileTooLarge:
		return "Image exceeds the upload size limit."

	case ErrInternal:
		return "Server error."
	default:
		return "An unexpected error occurred."
	}
}
