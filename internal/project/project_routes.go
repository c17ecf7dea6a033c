package project

import (
	"github.com/gin-gonic/gin"

	"rikimaka/internal/middleware"
	"rikimaka/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.PrincipalResolver) {
	projects := r.Group("/projects")
	projects.Use(middleware.Authenticate(resolver))
	{
		projects.GET("", handler.GetAll)
		projects.GET("/:id", handler.GetByID)
		projects.POST("", middleware.RequireRoles(user.RoleAdmin), handler.Create)
		projects.PUT("/:id", middleware.RequireRoles(user.RoleAdmin), handler.Update)
		projects.PUT("/:id/assign-user", middleware.RequireRoles(user.RoleAdmin), handler.AssignUser)
		projects.DELETE("/:id", middleware.RequireRoles(user.RoleAdmin), handler.Delete)
	}
}
