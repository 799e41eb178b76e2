package handler

import "github.com/vinimompox/products-service/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// productRequest carries the full product state. PUT replaces the stored
// record with exactly these fields: anything omitted resets to its zero
// value. The optional version is the caller's expected record version; when
// present the write only succeeds against that version.
type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Category    string  `json:"category"`
	Vintage     int     `json:"vintage"     validate:"gte=0"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Description string  `json:"description"`
	Version     *int64  `json:"version,omitempty"`
}

// productResponse is the transport representation of a product.
// It is intentionally separate from the domain type so the JSON contract is
// not coupled to internal changes.
type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Vintage     int     `json:"vintage"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	Version     int64   `json:"version"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Vintage:     p.Vintage,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Version:     p.Version,
	}
}
