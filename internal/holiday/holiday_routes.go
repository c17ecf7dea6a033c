package holiday

import (
	"github.com/gin-gonic/gin"

	"rikimaka/internal/middleware"
	"rikimaka/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.PrincipalResolver) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.Authenticate(resolver))
	{
		holidays.GET("", handler.GetAll)
		holidays.POST("", middleware.RequireRoles(user.RoleAdmin), handler.Create)
		holidays.PUT("/:id", middleware.RequireRoles(user.RoleAdmin), handler.Update)
		holidays.DELETE("/:id", middleware.RequireRoles(user.RoleAdmin), handler.Delete)
	}
}
