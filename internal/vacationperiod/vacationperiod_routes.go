package vacationperiod

import (
	"github.com/gin-gonic/gin"

	"rikimaka/internal/middleware"
	"rikimaka/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.PrincipalResolver) {
	periods := r.Group("/vacation-periods")
	periods.Use(middleware.Authenticate(resolver))
	{
		periods.GET("", handler.GetAll)
		periods.GET("/:id", handler.GetByID)
		periods.POST("", middleware.RequireRoles(user.RoleAdmin), handler.Create)
		periods.PUT("/:id", middleware.RequireRoles(user.RoleAdmin), handler.Update)
		periods.DELETE("/:id", middleware.RequireRoles(user.RoleAdmin), handler.Delete)
	}
}
