// Package render turns venue records and controller output into HTML fragments.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

const PlaceholderImage = "img/no-image.png"

// Renderer holds the parsed templates. It is safe for concurrent use.
type Renderer struct {
	tmpl       *template.Template
	staticBase string
}

func NewRenderer(staticBase string) (*Renderer, error) {
	tmpl, err := template.New("lapangin").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, staticBase: staticBase}, nil
}

func (r *Renderer) StaticBase() string {
	return r.staticBase
}

// Placeholder is the image shown for venues without photos.
func (r *Renderer) Placeholder() string {
	return r.staticBase + PlaceholderImage
}

// execute renders into a buffer first so a template error never leaves a
// half-written response.
func (r *Renderer) execute(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) ListPage(w io.Writer, page *ListPage) error {
	page.Static = r.staticBase
	return r.execute(w, "venue_list_page", page)
}

func (r *Renderer) ListFragment(w io.Writer, fragment *ListFragment) error {
	return r.execute(w, "venue_list_fragment", fragment)
}

func (r *Renderer) DetailPage(w io.Writer, page *DetailPage) error {
	page.Static = r.staticBase
	if page.ReviewForm != nil {
		page.ReviewForm.CSRFToken = page.CSRFToken
	}
	return r.execute(w, "venue_detail_page", page)
}

// Reviews renders only the reviews section, for partial refreshes.
func (r *Renderer) Reviews(w io.Writer, page *DetailPage) error {
	if page.Reviews == nil {
		return nil
	}
	return r.execute(w, "venue_reviews", page.Reviews)
}

func (r *Renderer) MitraPage(w io.Writer, page *MitraPage) error {
	page.Static = r.staticBase
	for i := range page.Table.Rows {
		page.Table.Rows[i].CSRFToken = page.CSRFToken
	}
	return r.execute(w, "admin_mitra_page", page)
}

func (r *Renderer) ProfilePage(w io.Writer, page *ProfilePage) error {
	page.Static = r.staticBase
	return r.execute(w, "profile_page", page)
}
