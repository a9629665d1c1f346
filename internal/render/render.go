package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/JuhQ/e2e-playwright/internal/model"
)

const confirmationTemplate = "form-submit.html"

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("unable to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Confirmation writes the page echoing s back to the user.
func (r *Renderer) Confirmation(w io.Writer, s model.Submission) error {
	if err := r.tmpl.ExecuteTemplate(w, confirmationTemplate, s); err != nil {
		return fmt.Errorf("failed to render %s: %w", confirmationTemplate, err)
	}
	return nil
}
