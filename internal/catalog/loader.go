package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Catalog load errors. All of them are fatal: the process cannot answer
// product questions without a complete catalog.
var (
	ErrCatalogNotFound  = errors.New("catalog file not found")
	ErrMalformedCatalog = errors.New("malformed catalog document")
	ErrInvalidCatalog   = errors.New("catalog document failed validation")
)

// document is the top-level catalog file shape.
type document struct {
	Products []Product `json:"products"`
}

// Load reads and validates a catalog JSON file from disk.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	store, err := Parse(data)
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Int("products", store.Len()).Msg("catalog loaded")
	return store, nil
}

// Parse validates catalog JSON bytes against the schema and builds a Store.
func Parse(data []byte) (*Store, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedCatalog)
	}
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}

	return NewStore(doc.Products), nil
}
