package middleware

import (
	"log"
	"net/http"
	"strings"

	"todo-app/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "user_email"
)

// RequireAuth verifies the bearer token and puts the principal into the
// gin context. Missing header, bad signature, and expiry all produce the
// same 401 body; the distinction only reaches the server log.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			rejectUnauthenticated(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			rejectUnauthenticated(c, "malformed authorization header")
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			rejectUnauthenticated(c, err.Error())
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Subject)
		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context, reason string) {
	log.Printf("request %s rejected: %s", RequestIDFromContext(c), reason)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthenticated",
		"message": "Invalid or expired token",
	})
}

// CurrentUserID returns the authenticated principal's id. The second
// return is false on routes that skipped RequireAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

func CurrentUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextEmailKey)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
