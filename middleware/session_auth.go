package middleware

import (
	"net/http"

	"github.com/Adria66/videogame-keeper/session"

	"github.com/gin-gonic/gin"
)

// SessionRequired gates a route group on an authenticated session.
// Requests without a principal are redirected to the log-in page before
// any handler runs, so unauthenticated requests never reach the store.
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Principal(c) == "" {
			c.Redirect(http.StatusFound, "/log-in")
			c.Abort()
			return
		}
		c.Next()
	}
}
