package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rikimaka/internal/shared/apperror"
)

// The dashboards consume two payload shapes: bare documents/arrays
// (users, projects, reports, vacations) and {"success":true,...} envelopes
// (holidays, periods, audit logs, auth). Errors are always
// {"success":false,"message":...}.

// Data writes a bare document or list.
func Data(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Envelope writes {"success":true} merged with the given fields.
func Envelope(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

// Message writes {"success":true,"message":...}.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

// Error writes {"success":false,"message":...}.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// DomainError maps a service error to its HTTP shape and writes it.
func DomainError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Message)
}

// Abort writes an error and stops the middleware chain.
func Abort(c *gin.Context, status int, message string) {
	Error(c, status, message)
	c.Abort()
}

// NotFound is the shorthand for missing-id responses.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}
