package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/janmeier/trackjob/internal/config"
	"github.com/janmeier/trackjob/internal/logger"
)

// userIDKey is the Gin context key under which the resolved user id is stored.
const userIDKey = "user_id"

// Auth returns a middleware that resolves the current user from a bearer
// token. Requests without a valid token are rejected unless a dev user is
// configured, in which case tokenless requests run as that user.
// Parameters:
//   - cfg: token-to-user mapping and optional dev user.
// Returns:
//   - gin.HandlerFunc: middleware handler.
func Auth(cfg config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")

		var userID string
		switch {
		case header != "" && token != header:
			userID = cfg.Tokens[token]
		case header == "" && cfg.DevUser != "":
			userID = cfg.DevUser
		}

		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or missing bearer token",
			})
			return
		}

		c.Set(userIDKey, userID)
		ctx := logger.WithField(c.Request.Context(), logger.FieldUserID, userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserID extracts the authenticated user id from the Gin context.
// Parameters:
//   - c: Gin request context.
// Returns:
//   - string: user id, or "" when the request was not authenticated.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
