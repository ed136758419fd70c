// Package render turns a board view into the HTML page. The rest of the
// service treats it as a pure function from page data to markup.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/notes-board/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// BoardPage holds all data passed to the board template for rendering.
type BoardPage struct {
	Cards    []*models.Card
	Comments []*models.Comment
	Greeting template.HTML
}

// Renderer produces the board page markup
type Renderer interface {
	RenderBoard(w io.Writer, data *BoardPage) error
}

// TemplateRenderer renders the embedded board template.
type TemplateRenderer struct {
	board *template.Template
}

// Verify interface compliance
var _ Renderer = (*TemplateRenderer)(nil)

// templateFuncs returns the FuncMap available to all templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// Card content is pre-authored fixture HTML, rendered as-is.
		// Comment content never goes through this.
		"raw": func(s string) template.HTML { return template.HTML(s) },
	}
}

// NewTemplateRenderer parses the embedded templates and returns a
// ready-to-use renderer.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	t, err := template.New("board.html").Funcs(templateFuncs()).ParseFS(
		templateFS,
		"templates/board.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parsing board template: %w", err)
	}

	return &TemplateRenderer{board: t}, nil
}

// RenderBoard writes the rendered board page to w
func (r *TemplateRenderer) RenderBoard(w io.Writer, data *BoardPage) error {
	if err := r.board.Execute(w, data); err != nil {
		return fmt.Errorf("rendering board: %w", err)
	}
	return nil
}
