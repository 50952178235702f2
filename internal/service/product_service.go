package service

import (
	"context"
	"strings"

	"github.com/clearlabel/clearlabel/internal/models"
	"github.com/clearlabel/clearlabel/internal/repository"
)

// maxSearchResults caps every search and listing response.
const maxSearchResults = 50

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// Products returns the full merged store, reloaded from disk.
func (s *ProductService) Products(ctx context.Context) (map[string]models.Product, error) {
	return s.repo.Load(ctx)
}

// Get returns a product by slug, or repository.ErrProductNotFound.
func (s *ProductService) Get(ctx context.Context, key string) (*models.Product, error) {
	return s.repo.Get(ctx, key)
}

// Search returns up to maxSearchResults product summaries.
//
// An empty query lists the first entries in store iteration order. A
// non-empty query matches case-insensitively as a substring of the product
// key, name, or any ingredient name; a product is reported at most once no
// matter how many of its ingredients match. Results are unranked. The
// returned slice is never nil so it always encodes as a JSON array.
func (s *ProductService) Search(ctx context.Context, query string) ([]models.ProductSummary, error) {
	products, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.ProductSummary, 0, maxSearchResults)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		for key, product := range products {
			if len(results) >= maxSearchResults {
				break
			}
			results = append(results, product.Summary(key))
		}
		return results, nil
	}

	for key, product := range products {
		if len(results) >= maxSearchResults {
			break
		}
		if matches(key, product, q) {
			results = append(results, product.Summary(key))
		}
	}

	return results, nil
}

// matches reports whether q occurs in the product's key, name, or any
// ingredient name. The ingredient scan stops at the first hit.
func matches(key string, product models.Product, q string) bool {
	if strings.Contains(strings.ToLower(key), q) {
		return true
	}
	if strings.Contains(strings.ToLower(product.Name), q) {
		return true
	}
	for _, ing := range product.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	return false
}
