package models

// Safety classification tags for ingredients. They drive the traffic-light
// coloring on the product page and carry no other semantics.
const (
	SafetySafe    = "safe"
	SafetyCaution = "caution"
	SafetyUnsafe  = "unsafe"
)

// Product describes a single product as stored in the products*.json files.
// The map key in the store is the slug; Key mirrors it for convenience.
type Product struct {
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	ShortName   string       `json:"short_name,omitempty"`
	Composition string       `json:"composition,omitempty"`
	Preparation string       `json:"preparation,omitempty"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	SideEffects []string     `json:"side_effects,omitempty"`
	SafetyFlags []string     `json:"safety_flags,omitempty"`
}

// Ingredient is one line of a product's composition table.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Safety string `json:"safety"`
}

// ProductSummary is the lightweight shape returned by the search endpoint.
type ProductSummary struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// Summary returns the search-result view of a product.
func (p Product) Summary(key string) ProductSummary {
	return ProductSummary{
		Key:       key,
		Name:      p.Name,
		ShortName: p.ShortName,
	}
}
