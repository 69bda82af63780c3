// Package web renders the server-side HTML pages: the reservation listing and
// the read-only grid. Templates are embedded so the binary is self-contained.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/pkordes/reservation-service/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Renderer.Render.
const (
	PageReservations = "reservations.html"
	PageGrid         = "grid.html"
)

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses every embedded template. It fails only if a template is
// malformed, which is a build-time mistake.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web.NewRenderer: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes page populated with reservations to w. The page is rendered
// into a buffer first so a template error never leaves a half-written body.
func (r *Renderer) Render(w io.Writer, page string, reservations []domain.Reservation) error {
	var buf bytes.Buffer
	data := struct{ Reservations []domain.Reservation }{reservations}
	if err := r.tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		return fmt.Errorf("web.Renderer.Render: %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
