package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notes-board/internal/identity"
	"github.com/notes-board/internal/render"
	"github.com/notes-board/internal/service"
	"github.com/rs/zerolog"
)

// BoardHandler handles the board page and comment submissions
type BoardHandler struct {
	services *service.Services
	provider identity.Provider
	renderer render.Renderer
	log      zerolog.Logger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(services *service.Services, provider identity.Provider, renderer render.Renderer, log zerolog.Logger) *BoardHandler {
	return &BoardHandler{
		services: services,
		provider: provider,
		renderer: renderer,
		log:      log.With().Str("handler", "board").Logger(),
	}
}

// ShowBoard handles GET /
// Renders every card (oldest first) and every comment (newest first) with
// the visitor's greeting. A store failure fails the whole request; the
// client's next request is the retry.
func (h *BoardHandler) ShowBoard(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.services.Board.GetBoard(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to fetch board")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	page := &render.BoardPage{
		Cards:    view.Cards,
		Comments: view.Comments,
		Greeting: render.Greeting(h.provider, c.Request),
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderBoard(&buf, page); err != nil {
		h.log.Error().Err(err).Msg("Failed to render board")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// SubmitComment handles POST /
// Resolves the author from the platform identity and the submitted form
// fields, persists the comment, and redirects to the comment anchor. An
// empty comment is a silent no-op redirect back to the page root.
func (h *BoardHandler) SubmitComment(c *gin.Context) {
	ctx := c.Request.Context()

	content := c.PostForm("content")
	name := c.PostForm("name")
	email := c.PostForm("email")

	user, _ := h.provider.Current(c.Request)
	author := identity.ResolveAuthor(user, name, email)

	_, err := h.services.Board.PostComment(ctx, author, content)
	if errors.Is(err, service.ErrEmptyContent) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to post comment")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Redirect(http.StatusFound, "/#comments")
}
