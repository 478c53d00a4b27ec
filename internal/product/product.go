// Package product serves a fixed product catalog over HTTP.
//
// The catalog is rebuilt on every read and submissions are accepted but never
// stored, so no state is shared between requests.
package product

import "errors"

var ErrNotFound = errors.New("product not found")

type Product struct {
	ID    int32   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
