// Package session wraps gin-contrib/sessions with typed access to the
// authenticated principal.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// The principal is the authenticated user's email.
const principalKey = "currentUser"

func SetPrincipal(c *gin.Context, email string) error {
	s := sessions.Default(c)
	s.Set(principalKey, email)
	return s.Save()
}

// Principal returns the authenticated email, or "" when the request
// carries no logged-in session.
func Principal(c *gin.Context) string {
	s := sessions.Default(c)
	if email, ok := s.Get(principalKey).(string); ok {
		return email
	}
	return ""
}

// Clear destroys the session. Clearing an already-empty session is a
// no-op, so logout stays idempotent.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
