package controllers

import (
	"errors"
	"net/http"

	"github.com/Adria66/videogame-keeper/services"
	"github.com/Adria66/videogame-keeper/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// renderError logs the underlying failure and renders the uniform error
// page instead of leaking a raw payload to the client.
func renderError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"status": status,
		}).Error(message)
	}
	c.HTML(status, "error.html", gin.H{
		"status":  status,
		"message": message,
	})
}

// renderServiceError maps service failures to deliberate responses:
// missing records are 404, foreign records 403, a principal without a
// user record means the session is stale and goes back to log-in, and
// everything else is a 500.
func renderServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		renderError(c, http.StatusNotFound, "That videogame does not exist.", nil)
	case errors.Is(err, services.ErrNotOwner):
		renderError(c, http.StatusForbidden, "That videogame belongs to another user.", nil)
	case errors.Is(err, services.ErrUserNotFound):
		if clearErr := session.Clear(c); clearErr != nil {
			logrus.WithError(clearErr).Warn("could not clear stale session")
		}
		c.Redirect(http.StatusFound, "/log-in")
	default:
		renderError(c, http.StatusInternalServerError, "Something went wrong on our side.", err)
	}
}
