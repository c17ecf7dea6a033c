package auth

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"rikimaka/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.PrincipalResolver) {
	authGroup := r.Group("/auth")
	{
		// Credential endpoints are the brute-force surface; throttle per IP.
		limited := authGroup.Group("")
		limited.Use(middleware.RateLimitByIP(rate.Limit(1), 5))
		{
			limited.POST("/login", handler.Login)
			limited.POST("/register", handler.Register)
		}

		authGroup.GET("/verify", middleware.Authenticate(resolver), handler.Verify)
	}
}
