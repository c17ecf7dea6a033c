package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"rikimaka/internal/shared/contextutil"
	"rikimaka/internal/shared/response"
)

// Context keys populated by Authenticate.
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
	CtxUserName = "user_name"
)

// Principal is the request-scoped identity resolved from a verified token.
type Principal struct {
	ID       string
	Name     string
	Role     string
	IsActive bool
}

// PrincipalResolver loads the live account for a token's subject. Resolving
// on every request means deactivated accounts invalidate their tokens
// immediately, with no grace window.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, userID string) (Principal, error)
}

// Authenticate validates the bearer token and resolves it to a live, active
// user before the handler runs.
func Authenticate(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.Abort(c, http.StatusUnauthorized, "Token de acceso requerido")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			response.Abort(c, http.StatusUnauthorized, "Token invalido")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Token invalido")
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Abort(c, http.StatusUnauthorized, "Token invalido")
			return
		}

		principal, err := resolver.ResolvePrincipal(c.Request.Context(), userID)
		if err != nil || !principal.IsActive {
			response.Abort(c, http.StatusUnauthorized, "Usuario no valido")
			return
		}

		c.Set(CtxUserID, principal.ID)
		c.Set(CtxUserRole, principal.Role)
		c.Set(CtxUserName, principal.Name)

		ctx := contextutil.WithUserID(c.Request.Context(), principal.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
