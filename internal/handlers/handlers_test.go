package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/clearlabel/clearlabel/internal/qr"
	"github.com/clearlabel/clearlabel/internal/repository"
	"github.com/clearlabel/clearlabel/internal/service"
	"github.com/clearlabel/clearlabel/internal/web"
	"github.com/clearlabel/clearlabel/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// testEnv wires real stores against temp directories, the way main does.
type testEnv struct {
	router       *chi.Mux
	staticDir    string
	feedbackFile string
}

func newTestEnv(t *testing.T, productJSON string) *testEnv {
	t.Helper()

	log := logger.New("error")

	dataDir := t.TempDir()
	if productJSON != "" {
		if err := os.WriteFile(filepath.Join(dataDir, "products.json"), []byte(productJSON), 0o644); err != nil {
			t.Fatalf("failed to write product file: %v", err)
		}
	}

	staticDir := t.TempDir()
	feedbackFile := filepath.Join(t.TempDir(), "feedbacks.json")

	templates, err := web.New()
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}

	repo := repository.NewFileProductRepository(dataDir, log)
	feedback := repository.NewFileFeedbackStore(feedbackFile, log)
	svc := service.NewProductService(repo)
	generator := qr.NewGenerator(staticDir)
	flash := NewFlashCodec("test-secret")

	pages := NewPageHandler(svc, generator, templates, flash, "", log)
	products := NewProductHandler(svc, feedback, templates, flash, log)
	search := NewSearchHandler(svc, log)
	health := NewHealthHandler(log)

	r := chi.NewRouter()
	r.Get("/", pages.Index)
	r.Post("/generate", pages.Generate)
	r.Get("/product/{productKey}", products.View)
	r.Post("/product/{productKey}", products.SubmitFeedback)
	r.Get("/search", search.Search)
	r.Get("/healthz", health.ServeHTTP)

	return &testEnv{
		router:       r,
		staticDir:    staticDir,
		feedbackFile: feedbackFile,
	}
}

const testProducts = `{
  "ors": {
    "name": "Oral Rehydration Solution",
    "short_name": "ORS",
    "composition": "Glucose and electrolytes",
    "ingredients": [
      {"name": "Glucose", "amount": "13.5 g/L", "safety": "safe"},
      {"name": "Sodium chloride", "amount": "2.6 g/L", "safety": "safe"}
    ],
    "side_effects": ["nausea"],
    "safety_flags": ["safe_for_children"]
  }
}`

// flashCookie returns the flash cookie set on the response, or nil.
func flashCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == flashCookieName && c.MaxAge >= 0 {
			return c
		}
	}
	return nil
}
