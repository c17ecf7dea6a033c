package vacation

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"rikimaka/internal/middleware"
	"rikimaka/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.PrincipalResolver, rdb *redis.Client) {
	vacations := r.Group("/vacations")
	vacations.Use(middleware.Authenticate(resolver))
	{
		vacations.GET("", middleware.RequireRoles(user.RoleAdmin), handler.GetAll)
		vacations.GET("/pending", middleware.RequireRoles(user.RoleAdmin), handler.GetPending)
		vacations.GET("/user/:userId", handler.GetByUser)
		vacations.GET("/:id", handler.GetByID)
		vacations.POST("", middleware.Idempotency(rdb), handler.Create)
		vacations.PUT("/:id", handler.Update)
		vacations.PUT("/:id/approve", middleware.RequireRoles(user.RoleAdmin), handler.Decide)
		vacations.DELETE("/:id", handler.Delete)
	}
}
