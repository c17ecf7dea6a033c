package report

import (
	"github.com/gin-gonic/gin"

	"rikimaka/internal/middleware"
	"rikimaka/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.PrincipalResolver) {
	reports := r.Group("/reports")
	reports.Use(middleware.Authenticate(resolver))
	{
		// Registered before /:id so gin does not capture "stats".
		reports.GET("/stats/hours-by-project", middleware.RequireRoles(user.RoleAdmin, user.RoleIT), handler.HoursByProject)
		reports.GET("", middleware.RequireRoles(user.RoleAdmin, user.RoleIT), handler.GetAll)
		reports.GET("/user/:userId", handler.GetByUser)
		reports.GET("/project/:projectId", handler.GetByProject)
		reports.GET("/:id", handler.GetByID)
		reports.POST("", handler.Create)
		reports.PUT("/:id", handler.Update)
		reports.DELETE("/:id", handler.Delete)
	}
}
