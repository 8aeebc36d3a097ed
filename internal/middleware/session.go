package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextSessionID is the gin context key for the resolved session id.
const ContextSessionID = "session_id"

// Session resolves the portal session cookie, minting one for first-time
// visitors. An absent session is a normal anonymous state.
func Session(cookieName string, maxAgeSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			sid = uuid.New().String()
			c.SetCookie(cookieName, sid, maxAgeSeconds, "/", "", false, true)
		}
		c.Set(ContextSessionID, sid)
		c.Next()
	}
}

// SessionID reads the resolved session id off the request context.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
