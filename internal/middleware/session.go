package middleware

import (
	"net/http"
	"strings"

	"burgerhouse/internal/session"

	"github.com/gin-gonic/gin"
)

const SessionIDKey = "sessionID"

// RequireSession validates the Bearer session token and attaches the
// session id to the request context.
func RequireSession(tokens *session.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			return
		}

		sessionID, err := tokens.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session: " + err.Error()})
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the id set by RequireSession.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
