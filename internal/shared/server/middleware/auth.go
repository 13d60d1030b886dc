package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-review/internal/shared/auth"
	"resume-review/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
)

// Auth parses a bearer token when present and stores identity in context.
// Requests without a token pass through anonymously; a present but invalid
// token is rejected.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(userIDKey, claims.UserID)
		if claims.Email != "" {
			c.Set(userEmailKey, claims.Email)
		}
		c.Next()
	}
}

// RequireAuth rejects requests that did not authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserIDFromContext(c) == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return
		}
		c.Next()
	}
}

// UserIDFromContext fetches the user ID stored by Auth.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// UserEmailFromContext fetches the user email stored by Auth.
func UserEmailFromContext(c *gin.Context) string {
	return c.GetString(userEmailKey)
}
