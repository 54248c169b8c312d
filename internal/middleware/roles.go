package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
)

// RequireRoles gates a route to the listed roles. AuthMiddleware must run
// first so the role is already in the context.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextUserRole)
		if !exists {
			httperr.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		role, _ := roleVal.(string)
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "Access denied. Required role: "+strings.Join(allowed, " or "))
		c.Abort()
	}
}
