package middleware

import (
	"net/http"

	"github.com/shuhuiluo/trivia-game/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// UserKey is the context key the authenticated user is stored under.
const UserKey = "user"

// SessionAuth rejects requests without a valid, unexpired session cookie
// and stores the resolved user in the request context.
func SessionAuth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := sessions.Resolve(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}
