package prompt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sahla-io/dukkan/internal/catalog"
)

func testStore() *catalog.Store {
	return catalog.NewStore([]catalog.Product{
		{
			ID: "p1", Name: "Enterprise CRM", NameAr: "نظام إدارة العملاء",
			Price: decimal.NewFromInt(2500), Currency: "USD", Category: "Business Software",
			UnitsSold: 150, Description: "CRM platform.", DescriptionAr: "منصة إدارة العملاء.",
		},
	})
}

func TestBuildContainsEveryRecordField(t *testing.T) {
	p := Build(testStore())

	assert.Contains(t, p, "ID: p1")
	assert.Contains(t, p, "Name (EN): Enterprise CRM")
	assert.Contains(t, p, "Name (AR): نظام إدارة العملاء")
	assert.Contains(t, p, "Price: $2,500.00 USD")
	assert.Contains(t, p, "Category: Business Software")
	assert.Contains(t, p, "Units Sold: 150")
	assert.Contains(t, p, "Description (EN): CRM platform.")
}

func TestBuildContainsPolicyScaffolding(t *testing.T) {
	p := Build(testStore())

	assert.Contains(t, p, "ONLY questions related to the company's products")
	assert.Contains(t, p, "NEVER mix languages")
	assert.Contains(t, p, "Only staff can generate sales reports")
	assert.Contains(t, p, "يمكنني فقط تقديم معلومات عن منتجات شركتنا.")
}

func TestBuildIsIdempotent(t *testing.T) {
	store := testStore()
	assert.Equal(t, Build(store), Build(store))
}

func TestBuildReflectsDifferentStore(t *testing.T) {
	other := catalog.NewStore([]catalog.Product{{ID: "p9", Name: "New Thing"}})
	assert.NotEqual(t, Build(testStore()), Build(other))
	assert.Contains(t, Build(other), "New Thing")
}
