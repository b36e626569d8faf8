package httpapi

import (
	"net/http"

	"stylehub-be/internal/auth"
	"stylehub-be/internal/middleware"
	"stylehub-be/internal/user"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerHandler(userSvc user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		_, u, err := userSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User created successfully",
			"user":    u,
		})
	}
}

func loginHandler(userSvc user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		token, u, err := userSvc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		auth.SetSessionCookie(c.Writer, token)

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    u,
		})
	}
}

// logoutHandler only clears the cookie; the token stays valid until
// its natural expiry since there is no server-side session store.
func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearSessionCookie(c.Writer)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

func currentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}
