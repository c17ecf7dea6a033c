package user

import (
	"github.com/gin-gonic/gin"

	"rikimaka/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.PrincipalResolver) {
	users := r.Group("/users")
	users.Use(middleware.Authenticate(resolver))
	{
		users.GET("", middleware.RequireRoles(RoleAdmin, RoleIT), handler.GetAll)
		users.GET("/:id", handler.GetByID)
		users.POST("", middleware.RequireRoles(RoleAdmin), handler.Create)
		users.PUT("/:id", middleware.RequireRoles(RoleAdmin), handler.Update)
		users.DELETE("/:id", middleware.RequireRoles(RoleAdmin), handler.Delete)
	}
}
