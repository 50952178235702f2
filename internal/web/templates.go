package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/clearlabel/clearlabel/internal/models"
)

//go:embed templates/*.html
var files embed.FS

// Templates renders the embedded HTML views.
type Templates struct {
	t *template.Template
}

// New parses the embedded templates.
func New() (*Templates, error) {
	t, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Templates{t: t}, nil
}

// Render executes the named template and writes it as HTML.
func (tp *Templates) Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tp.t.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// IndexData backs the selection form on the index page.
type IndexData struct {
	Products map[string]models.Product
	Flash    string
}

// GenerateData backs the QR confirmation page. Product is nil when the key
// is not (yet) in the store; the QR is still shown so not-yet-onboarded
// products can be labelled ahead of time.
type GenerateData struct {
	ProductKey string
	ProductURL string
	QRPath     string
	Product    *models.Product
}

// ProductData backs the consumer product page. Product is nil for unknown
// keys, which renders the onboarding placeholder.
type ProductData struct {
	ProductKey string
	Product    *models.Product
	Flash      string
}
