package auditlog

import (
	"github.com/gin-gonic/gin"

	"rikimaka/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.PrincipalResolver) {
	logs := r.Group("/audit-logs")
	logs.Use(middleware.Authenticate(resolver))
	{
		// Literal role: the user package records into this one, so its
		// constants cannot be imported here.
		logs.GET("", middleware.RequireRoles("admin"), handler.GetAll)
	}
}
