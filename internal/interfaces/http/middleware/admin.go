package middleware

import (
	"net/http"
	"strings"

	"github.com/folio/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireAdmin gates write operations behind an administrator check. It must
// run after JWTAuthMiddleware. A caller is an administrator when their token
// role is "admin" or their email matches the configured admin address.
// Unauthenticated requests get 401, authenticated non-admins get 403.
func RequireAdmin(adminEmail string) gin.HandlerFunc {
	adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))

	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Unauthorized"))
			return
		}

		if claims.Role == "admin" || (adminEmail != "" && strings.ToLower(claims.Email) == adminEmail) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrCodeForbidden, "Admin access required"))
	}
}
