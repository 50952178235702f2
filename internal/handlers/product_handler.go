package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/clearlabel/clearlabel/internal/models"
	"github.com/clearlabel/clearlabel/internal/repository"
	"github.com/clearlabel/clearlabel/internal/service"
	"github.com/clearlabel/clearlabel/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// anonymousName is recorded when a feedback submitter leaves the name blank.
const anonymousName = "anonymous"

// ProductHandler serves the consumer-facing product page and accepts
// feedback submissions for it.
type ProductHandler struct {
	service   *service.ProductService
	feedback  repository.FeedbackStore
	templates *web.Templates
	flash     *FlashCodec
	log       *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	svc *service.ProductService,
	feedback repository.FeedbackStore,
	templates *web.Templates,
	flash *FlashCodec,
	log *slog.Logger,
) *ProductHandler {
	return &ProductHandler{
		service:   svc,
		feedback:  feedback,
		templates: templates,
		flash:     flash,
		log:       log,
	}
}

// View handles GET /product/{productKey}. An unknown key is not an error:
// it renders a placeholder page inviting the producer to onboard details,
// with status 200.
func (h *ProductHandler) View(w http.ResponseWriter, r *http.Request) {
	productKey := chi.URLParam(r, "productKey")

	product, err := h.service.Get(r.Context(), productKey)
	if err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			h.log.Error("failed to load product", "product_key", productKey, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		product = nil
	}

	data := web.ProductData{
		ProductKey: productKey,
		Product:    product,
		Flash:      h.flash.pop(w, r),
	}
	if err := h.templates.Render(w, "product.html", data); err != nil {
		h.log.Error("failed to render product page", "error", err)
	}
}

// SubmitFeedback handles POST /product/{productKey}. It appends a feedback
// entry and redirects back to the GET view so a page refresh cannot
// resubmit. The product key is stored as given, whether or not it exists in
// the store.
func (h *ProductHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	productKey := chi.URLParam(r, "productKey")

	if err := r.ParseForm(); err != nil {
		h.log.Warn("failed to parse feedback form", "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		name = anonymousName
	}

	entry := models.FeedbackEntry{
		ID:         uuid.New().String(),
		ProductKey: productKey,
		Name:       name,
		Comment:    strings.TrimSpace(r.PostFormValue("comment")),
		Timestamp:  time.Now().UTC(),
	}

	if err := h.feedback.Append(r.Context(), entry); err != nil {
		h.log.Error("failed to save feedback", "product_key", productKey, "error", err)
		http.Error(w, "Failed to save feedback", http.StatusInternalServerError)
		return
	}

	h.log.Info("feedback received",
		"feedback_id", entry.ID,
		"product_key", entry.ProductKey,
		"name", entry.Name,
	)

	h.flash.set(w, "Thanks, your feedback has been recorded.")
	http.Redirect(w, r, "/product/"+productKey, http.StatusSeeOther)
}
