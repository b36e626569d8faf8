package middleware

import (
	"net/http"

	"stylehub-be/internal/apperr"
	"stylehub-be/internal/auth"
	"stylehub-be/internal/user"

	"github.com/gin-gonic/gin"
)

// Authenticate is the authorization gate applied to every session-
// scoped route: token from cookie store, token verification, then a
// live lookup of the user record. A valid token whose user row is gone
// yields 404, deliberately distinct from 401.
func Authenticate(userSvc user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractSessionToken(c.Request)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		u, err := userSvc.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}

		setCurrentUser(c, u)
		c.Next()
	}
}

// RequireAdmin gates catalog mutations and the all-orders view. It
// must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
