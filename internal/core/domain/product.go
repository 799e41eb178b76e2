package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrVersionConflict = errors.New("product version conflict")

// Product is a catalog entry. Version is the optimistic-concurrency token:
// it starts at 0, increments by exactly 1 on every successful update, and is
// compared atomically by the store on conditional writes. A write carrying a
// stale version is rejected, never merged.
type Product struct {
	ID          string  `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Category    string  `json:"category" bson:"category"`
	Vintage     int     `json:"vintage" bson:"vintage"`
	Price       float64 `json:"price" bson:"price"`
	Stock       int     `json:"stock" bson:"stock"`
	Description string  `json:"description" bson:"description"`
	Version     int64   `json:"version" bson:"version"`
}
