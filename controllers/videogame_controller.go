package controllers

import (
	"net/http"

	"github.com/Adria66/videogame-keeper/services"
	"github.com/Adria66/videogame-keeper/session"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VideogameController struct {
	videogameService *services.VideogameService
}

func NewVideogameController(videogameService *services.VideogameService) *VideogameController {
	return &VideogameController{
		videogameService: videogameService,
	}
}

// RegisterRoutes mounts the catalog routes. The caller passes a group
// that already carries the session gate.
func (c *VideogameController) RegisterRoutes(r gin.IRouter) {
	r.GET("/new-videogame", c.ShowCreate)
	r.POST("/new-videogame", c.Create)
	r.GET("/all-videogames", c.List)
	r.GET("/videogame/:id", c.Detail)
	r.GET("/edit-videogame/:id", c.ShowEdit)
	r.POST("/edit-videogame/:id", c.Edit)
	r.POST("/delete-game/:id", c.Delete)
}

func (c *VideogameController) ShowCreate(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "newVideogame.html", nil)
}

func (c *VideogameController) Create(ctx *gin.Context) {
	if err := ctx.Request.ParseForm(); err != nil {
		renderError(ctx, http.StatusBadRequest, "Could not read the submitted form.", err)
		return
	}

	_, err := c.videogameService.Create(ctx.Request.Context(), session.Principal(ctx), ctx.Request.PostForm)
	if err != nil {
		renderServiceError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/all-videogames")
}

// List shows the current user's collection, expanded from the
// reference list. A principal without a user record means the session
// is stale, so it is cleared and the user sent back to log in.
func (c *VideogameController) List(ctx *gin.Context) {
	games, err := c.videogameService.ListForUser(ctx.Request.Context(), session.Principal(ctx))
	if err != nil {
		renderServiceError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "allVideogames.html", gin.H{
		"videogames": games,
	})
}

func (c *VideogameController) Detail(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	game, err := c.videogameService.Get(ctx.Request.Context(), id)
	if err != nil {
		renderServiceError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "singleVideogame.html", game)
}

func (c *VideogameController) ShowEdit(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	game, err := c.videogameService.Get(ctx.Request.Context(), id)
	if err != nil {
		renderServiceError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "editForm.html", game)
}

func (c *VideogameController) Edit(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := ctx.Request.ParseForm(); err != nil {
		renderError(ctx, http.StatusBadRequest, "Could not read the submitted form.", err)
		return
	}

	err := c.videogameService.Edit(ctx.Request.Context(), session.Principal(ctx), id, ctx.Request.PostForm)
	if err != nil {
		renderServiceError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/videogame/"+id.Hex())
}

func (c *VideogameController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.videogameService.Delete(ctx.Request.Context(), session.Principal(ctx), id); err != nil {
		renderServiceError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/all-videogames")
}

// parseID reads the :id route parameter. A malformed id renders a 400
// and reports false.
func parseID(ctx *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		renderError(ctx, http.StatusBadRequest, "That videogame id is not valid.", nil)
		return primitive.NilObjectID, false
	}
	return id, true
}
