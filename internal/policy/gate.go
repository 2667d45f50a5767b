package policy

import (
	"strings"

	"github.com/sahla-io/dukkan/internal/lang"
)

// AttributeRule maps a product attribute to the keywords that signal a
// question about it and whether it is staff-restricted.
type AttributeRule struct {
	Attribute string
	StaffOnly bool
	Keywords  []string
}

// DefaultAttributeRules returns the static attribute policy in fixed
// declaration order. Open attributes are listed alongside restricted ones so
// the full policy surface is visible in one place.
func DefaultAttributeRules() []AttributeRule {
	return []AttributeRule{
		{Attribute: "name", Keywords: []string{"name", "called", "product"}},
		{Attribute: "description", Keywords: []string{"description", "details", "about"}},
		{Attribute: "category", Keywords: []string{"category", "type", "segment", "kind"}},
		{Attribute: "price", Keywords: []string{"price", "cost", "how much", "usd", "dollar"}},
		{
			Attribute: "units_sold",
			StaffOnly: true,
			Keywords: []string{
				"units sold", "sold units", "units", "sold", "sales volume",
				"best seller", "top seller", "most sold", "most selling",
				"وحدات مباعة", "الوحدات المباعة", "مباعة", "الأكثر مبيعاً", "أفضل مبيعاً",
			},
		},
		{
			Attribute: "revenue",
			StaffOnly: true,
			Keywords: []string{
				"revenue", "total sales", "sales revenue", "earnings",
				"إيرادات", "الإيرادات", "المبيعات",
			},
		},
	}
}

// topicKeywords signal report-seeking intent broadly; the attribute rules
// govern specific field access. Both gates are evaluated, topic first.
var topicKeywords = []string{
	"report", "analytics", "revenue", "sales", "dashboard", "performance",
	"تقرير", "تقارير", "تحليلات", "إيرادات", "الإيرادات", "مبيعات", "المبيعات",
}

// Gate runs the deterministic access checks for one message.
type Gate struct {
	rules  []AttributeRule
	topics []string
}

// NewGate builds a gate over the default attribute rules and topic keywords.
// Keywords are lowercased once at construction.
func NewGate() *Gate {
	rules := DefaultAttributeRules()
	for i := range rules {
		for j, kw := range rules[i].Keywords {
			rules[i].Keywords[j] = strings.ToLower(kw)
		}
	}
	topics := make([]string, len(topicKeywords))
	for i, kw := range topicKeywords {
		topics[i] = strings.ToLower(kw)
	}
	return &Gate{rules: rules, topics: topics}
}

// CheckTopic returns the localized staff-only rejection when a customer asks
// a report-seeking question. Staff always passes.
func (g *Gate) CheckTopic(message string, role Role) (string, bool) {
	if role == RoleStaff {
		return "", false
	}
	lower := strings.ToLower(message)
	for _, kw := range g.topics {
		if strings.Contains(lower, kw) {
			return TopicRejection(lang.Detect(message)), true
		}
	}
	return "", false
}

// CheckAttribute returns the localized rejection when a customer references
// a staff-only product attribute. First matching rule wins; staff has full
// access.
func (g *Gate) CheckAttribute(message string, role Role) (string, bool) {
	if role == RoleStaff {
		return "", false
	}
	lower := strings.ToLower(message)
	for _, rule := range g.rules {
		if !rule.StaffOnly {
			continue
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return AttributeRejection(lang.Detect(message)), true
			}
		}
	}
	return "", false
}
