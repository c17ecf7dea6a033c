package middleware

import (
	"github.com/gin-gonic/gin"

	"rikimaka/internal/shared/contextutil"
)

// ClientInfo stashes the caller's IP and user agent in the request context
// so the audit trail can record them without reaching back into gin.
func ClientInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := contextutil.WithClientInfo(c.Request.Context(), contextutil.ClientInfo{
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
