package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/response"
)

var roleDeniedCode = map[model.Role]response.ErrCode{
	model.RoleAdmin:   response.ErrAdminAccessOnly,
	model.RoleStaff:   response.ErrStaffAccessOnly,
	model.RoleStudent: response.ErrStudentAccessOnly,
}

// RequireRole lets the request through only when the authenticated caller
// has the given role. Must run after Authenticate.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if claims.User.Role != role {
			code, ok := roleDeniedCode[role]
			if !ok {
				code = response.ErrForbidden
			}
			response.AbortFail(c, http.StatusForbidden, code)
			return
		}

		c.Next()
	}
}

// CallerID parses the caller's id as a UUID. Only staff and student tokens
// carry UUID ids; the admin id is synthetic.
func CallerID(c *gin.Context) (uuid.UUID, bool) {
	claims := GetClaims(c)
	if claims == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.User.ID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
