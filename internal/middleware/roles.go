package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rikimaka/internal/shared/response"
)

// RequireRoles rejects requests whose resolved role is outside the allowed
// set. Must run after Authenticate.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(CtxUserRole)
		if !exists {
			response.Abort(c, http.StatusUnauthorized, "Usuario no autenticado")
			return
		}

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Abort(c, http.StatusForbidden, "No tiene permisos para esta accion")
	}
}
