package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahla-io/dukkan/internal/lang"
)

const validCatalog = `{
  "products": [
    {
      "id": "prod-001",
      "name": "Enterprise CRM",
      "name_ar": "نظام إدارة العملاء",
      "price": 2500.00,
      "currency": "USD",
      "category": "Business Software",
      "units_sold": 150,
      "description": "Customer relationship management platform.",
      "description_ar": "منصة إدارة علاقات العملاء."
    },
    {
      "id": "prod-002",
      "name": "HR Management Solution",
      "name_ar": "حل إدارة الموارد البشرية",
      "price": 1800.50,
      "currency": "USD",
      "category": "Business Software",
      "units_sold": 90,
      "description": "End-to-end HR and payroll suite.",
      "description_ar": "نظام متكامل للموارد البشرية والرواتب."
    }
  ]
}`

func TestParseValidCatalog(t *testing.T) {
	store, err := Parse([]byte(validCatalog))
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())

	products := store.Products()
	assert.Equal(t, "prod-001", products[0].ID)
	assert.Equal(t, "prod-002", products[1].ID)
	assert.True(t, products[0].Price.Equal(decimal.NewFromFloat(2500.00)))
	assert.Equal(t, int64(150), products[0].UnitsSold)
}

func TestParsePreservesInsertionOrder(t *testing.T) {
	store, err := Parse([]byte(validCatalog))
	require.NoError(t, err)

	products := store.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "Enterprise CRM", products[0].Name)
	assert.Equal(t, "HR Management Solution", products[1].Name)
}

func TestParseMissingRequiredField(t *testing.T) {
	// name_ar omitted on the only record.
	doc := `{"products": [{"id": "p1", "name": "X", "price": 10, "currency": "USD",
		"category": "c", "units_sold": 1, "description": "d", "description_ar": "d"}]}`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "name_ar")
}

func TestParseNegativeNumbersRejected(t *testing.T) {
	doc := `{"products": [{"id": "p1", "name": "X", "name_ar": "س", "price": -5,
		"currency": "USD", "category": "c", "units_sold": 1, "description": "d", "description_ar": "د"}]}`

	_, err := Parse([]byte(doc))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse([]byte(`{"products": [`))
	assert.ErrorIs(t, err, ErrMalformedCatalog)
}

func TestParseMissingProductsKey(t *testing.T) {
	_, err := Parse([]byte(`{"items": []}`))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o600))

	store, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
}

func TestProductLocalFields(t *testing.T) {
	store, err := Parse([]byte(validCatalog))
	require.NoError(t, err)

	p := store.Products()[0]
	assert.Equal(t, "Enterprise CRM", p.LocalName(lang.English))
	assert.Equal(t, "نظام إدارة العملاء", p.LocalName(lang.Arabic))
	assert.Equal(t, "Customer relationship management platform.", p.LocalDescription(lang.English))
}

func TestProductRevenue(t *testing.T) {
	p := Product{Price: decimal.NewFromFloat(2500), UnitsSold: 150}
	assert.True(t, p.Revenue().Equal(decimal.NewFromInt(375000)))
}

func TestStoreCopiesAreIsolated(t *testing.T) {
	store := NewStore([]Product{{ID: "p1", Name: "A"}})
	got := store.Products()
	got[0].Name = "mutated"

	assert.Equal(t, "A", store.Products()[0].Name)
}
