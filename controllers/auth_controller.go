package controllers

import (
	"errors"
	"net/http"

	"github.com/Adria66/videogame-keeper/services"
	"github.com/Adria66/videogame-keeper/session"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type CredentialsForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterRoutes mounts the public routes: home, sign-up, log-in and
// log-out. Log-out stays public so clearing a session is always allowed.
func (c *AuthController) RegisterRoutes(r gin.IRouter) {
	r.GET("/", c.Home)
	r.GET("/log-in", c.ShowLogIn)
	r.POST("/log-in", c.LogIn)
	r.GET("/sign-up", c.ShowSignUp)
	r.POST("/sign-up", c.SignUp)
	r.GET("/log-out", c.LogOut)
}

// Home renders the landing page with the principal when one is set.
func (c *AuthController) Home(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "home.html", gin.H{
		"session": session.Principal(ctx),
	})
}

func (c *AuthController) ShowLogIn(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "logIn.html", nil)
}

func (c *AuthController) LogIn(ctx *gin.Context) {
	var form CredentialsForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.HTML(http.StatusBadRequest, "logIn.html", gin.H{
			"errorMessage": credentialsMessage(err),
		})
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		ctx.HTML(http.StatusUnauthorized, "logIn.html", gin.H{
			"errorMessage": "user does not exist.",
		})
		return
	case errors.Is(err, services.ErrWrongPassword):
		ctx.HTML(http.StatusUnauthorized, "logIn.html", gin.H{
			"errorMessage": "incorrect password, try again.",
		})
		return
	case err != nil:
		renderError(ctx, http.StatusInternalServerError, "Something went wrong on our side.", err)
		return
	}

	if err := session.SetPrincipal(ctx, user.Email); err != nil {
		renderError(ctx, http.StatusInternalServerError, "Could not start your session.", err)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

func (c *AuthController) ShowSignUp(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "signUp.html", nil)
}

// SignUp registers an account. The new user is not logged in: they are
// sent back to the home page and log in themselves.
func (c *AuthController) SignUp(ctx *gin.Context) {
	var form CredentialsForm
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.HTML(http.StatusBadRequest, "signUp.html", gin.H{
			"errorMessage": credentialsMessage(err),
		})
		return
	}

	err := c.authService.Register(ctx.Request.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, services.ErrUserExists):
		ctx.HTML(http.StatusOK, "logIn.html", gin.H{
			"errorMessage": "user already exists, did you mean to log in?",
		})
		return
	case err != nil:
		renderError(ctx, http.StatusInternalServerError, "Could not create your account.", err)
		return
	}

	ctx.Redirect(http.StatusFound, "/")
}

// LogOut destroys the session unconditionally and goes home. Calling it
// while already logged out is fine.
func (c *AuthController) LogOut(ctx *gin.Context) {
	if err := session.Clear(ctx); err != nil {
		logrus.WithError(err).Warn("could not clear session")
	}
	ctx.Redirect(http.StatusFound, "/")
}

// credentialsMessage turns a binding failure into the message shown on
// the form.
func credentialsMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, e := range ve {
			switch e.Field() {
			case "Email":
				return "Please provide a valid email address"
			case "Password":
				return "Password is required"
			}
		}
	}
	return "Invalid input data"
}
