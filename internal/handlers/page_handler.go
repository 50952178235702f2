package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/clearlabel/clearlabel/internal/qr"
	"github.com/clearlabel/clearlabel/internal/service"
	"github.com/clearlabel/clearlabel/internal/web"
)

// PageHandler serves the producer-facing pages: the selection form and the
// QR confirmation page.
type PageHandler struct {
	service       *service.ProductService
	generator     *qr.Generator
	templates     *web.Templates
	flash         *FlashCodec
	publicBaseURL string
	log           *slog.Logger
}

// NewPageHandler creates a new page handler. publicBaseURL may be empty, in
// which case product URLs are derived from the incoming request.
func NewPageHandler(
	svc *service.ProductService,
	generator *qr.Generator,
	templates *web.Templates,
	flash *FlashCodec,
	publicBaseURL string,
	log *slog.Logger,
) *PageHandler {
	return &PageHandler{
		service:       svc,
		generator:     generator,
		templates:     templates,
		flash:         flash,
		publicBaseURL: publicBaseURL,
		log:           log,
	}
}

// Index handles GET /. It reloads the store and renders the selection form.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Products(r.Context())
	if err != nil {
		h.log.Error("failed to load products", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := web.IndexData{
		Products: products,
		Flash:    h.flash.pop(w, r),
	}
	if err := h.templates.Render(w, "index.html", data); err != nil {
		h.log.Error("failed to render index page", "error", err)
	}
}

// Generate handles POST /generate. The form carries either an existing key
// in product_select or a free-text product_name; with neither the user is
// redirected back to the form with a validation message. A QR is generated
// even for keys absent from the store so producers can label products that
// have not been onboarded yet.
func (h *PageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warn("failed to parse generate form", "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	productKey := r.PostFormValue("product_select")
	if productKey == "" {
		freeName := strings.TrimSpace(r.PostFormValue("product_name"))
		if freeName == "" {
			h.flash.set(w, "Please provide a product name or select one.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		productKey = slugify(freeName)
	}

	productURL := h.baseURL(r) + "/product/" + url.PathEscape(productKey)

	qrRelPath, err := h.generator.Generate(productURL, productKey)
	if err != nil {
		h.log.Error("failed to generate QR code", "product_key", productKey, "error", err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	h.log.Info("generated QR code", "product_key", productKey, "url", productURL)

	// Unknown keys still get a confirmation page, just without product info.
	product, err := h.service.Get(r.Context(), productKey)
	if err != nil {
		product = nil
	}

	data := web.GenerateData{
		ProductKey: productKey,
		ProductURL: productURL,
		QRPath:     "/static/" + qrRelPath,
		Product:    product,
	}
	if err := h.templates.Render(w, "generate.html", data); err != nil {
		h.log.Error("failed to render generate page", "error", err)
	}
}

// baseURL returns the absolute base for product links: the configured
// public URL when set, otherwise the scheme and host of the request.
func (h *PageHandler) baseURL(r *http.Request) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// slugify derives a product key from a free-text name: lowercase with
// spaces replaced by hyphens. Other characters pass through untouched, so
// "My Product!" becomes "my-product!". Changing this would change which
// page already-printed QR codes point at.
func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
