package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sahla-io/dukkan/internal/lang"
)

// moneyPrinter renders grouped decimal numbers ("1,234.56"). Money is always
// shown with the dollar sign and two decimal places in both languages, per
// the catalog's USD pricing.
var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders a decimal amount as $X,XXX.XX.
func FormatMoney(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return moneyPrinter.Sprintf("$%.2f", v)
}

// RevenueAnswer is the deterministic staff answer for total-revenue queries.
func (e *Engine) RevenueAnswer(l lang.Language) string {
	money := FormatMoney(e.TotalRevenue())
	if l == lang.Arabic {
		return fmt.Sprintf("إجمالي الإيرادات: %s دولار أمريكي.", money)
	}
	return fmt.Sprintf("Total revenue: %s USD.", money)
}

// UnitsAnswer is the deterministic staff answer for total-units queries.
func (e *Engine) UnitsAnswer(l lang.Language) string {
	units := e.TotalUnits()
	if l == lang.Arabic {
		return fmt.Sprintf("إجمالي الوحدات المباعة: %d.", units)
	}
	return fmt.Sprintf("Total units sold: %d.", units)
}

// BestSellerAnswer is the deterministic staff answer for best-seller queries,
// with the product name localized to the response language.
func (e *Engine) BestSellerAnswer(l lang.Language) string {
	best, ok := e.BestSeller()
	if !ok {
		if l == lang.Arabic {
			return "لا توجد منتجات متاحة."
		}
		return "No products available."
	}
	money := FormatMoney(best.Revenue())
	if l == lang.Arabic {
		return fmt.Sprintf("أفضل منتج مبيعاً: %s بعدد %d وحدة (%s).", best.NameAr, best.UnitsSold, money)
	}
	return fmt.Sprintf("Best seller: %s with %d units (%s).", best.Name, best.UnitsSold, money)
}
