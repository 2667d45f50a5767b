// Package catalog holds the fixed set of product records the chatbot can
// answer about.
//
// The store is loaded once at startup and is immutable afterwards, so it is
// safe to share read-only across concurrently handled sessions. Record
// identifiers are assumed unique; insertion order is preserved for listing.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/sahla-io/dukkan/internal/lang"
)

// Product is a single catalog record. Names and descriptions are carried in
// both supported languages; the response language picks which one is shown.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	NameAr        string          `json:"name_ar"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Category      string          `json:"category"`
	UnitsSold     int64           `json:"units_sold"`
	Description   string          `json:"description"`
	DescriptionAr string          `json:"description_ar"`
}

// LocalName returns the product name in the given language.
func (p Product) LocalName(l lang.Language) string {
	if l == lang.Arabic {
		return p.NameAr
	}
	return p.Name
}

// LocalDescription returns the product description in the given language.
func (p Product) LocalDescription(l lang.Language) string {
	if l == lang.Arabic {
		return p.DescriptionAr
	}
	return p.Description
}

// Revenue returns price × units_sold for this record.
func (p Product) Revenue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.UnitsSold))
}

// Store is the immutable, ordered product catalog.
type Store struct {
	products []Product
}

// NewStore builds a store from the given records, preserving order. The
// slice is copied so later mutation by the caller cannot leak in.
func NewStore(products []Product) *Store {
	cp := make([]Product, len(products))
	copy(cp, products)
	return &Store{products: cp}
}

// Products returns a copy of all records in insertion order.
func (s *Store) Products() []Product {
	cp := make([]Product, len(s.products))
	copy(cp, s.products)
	return cp
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.products)
}
