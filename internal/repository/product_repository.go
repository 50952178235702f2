package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/clearlabel/clearlabel/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

const (
	productFilePrefix = "products"
	productFileSuffix = ".json"
)

// ProductRepository defines the interface for product data access.
// Load rebuilds the full store from disk on every call; there is no cache,
// so edits to the backing files are visible on the next request.
type ProductRepository interface {
	Load(ctx context.Context) (map[string]models.Product, error)
	Get(ctx context.Context, key string) (*models.Product, error)
}

// FileProductRepository implements ProductRepository over a directory of
// products*.json files. Each file holds a map of slug -> product; files are
// merged in lexicographic name order, later files overwriting duplicate keys.
type FileProductRepository struct {
	dataDir string
	log     *slog.Logger
}

// NewFileProductRepository creates a repository reading from dataDir.
func NewFileProductRepository(dataDir string, log *slog.Logger) *FileProductRepository {
	return &FileProductRepository{
		dataDir: dataDir,
		log:     log,
	}
}

// Load scans the data directory and merges every parsable product file.
// A file that cannot be read or parsed is logged and skipped so one corrupt
// file cannot take the whole store down. Zero matching files is not an
// error; the result is simply empty.
func (r *FileProductRepository) Load(ctx context.Context) (map[string]models.Product, error) {
	products := make(map[string]models.Product)

	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		r.log.Warn("could not read product data directory", "dir", r.dataDir, "error", err)
		return products, nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, productFilePrefix) && strings.HasSuffix(name, productFileSuffix) {
			names = append(names, name)
		}
	}

	// Merge order must not depend on OS directory-listing order.
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(r.dataDir, name)

		data, err := os.ReadFile(path)
		if err != nil {
			r.log.Warn("could not read product file, skipping", "path", path, "error", err)
			continue
		}

		var parsed map[string]models.Product
		if err := json.Unmarshal(data, &parsed); err != nil {
			r.log.Warn("could not parse product file, skipping", "path", path, "error", err)
			continue
		}

		for key, product := range parsed {
			product.Key = key
			products[key] = product
		}
	}

	return products, nil
}

// Get returns a single product by slug, or ErrProductNotFound.
func (r *FileProductRepository) Get(ctx context.Context, key string) (*models.Product, error) {
	products, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	product, exists := products[key]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}
