package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahla-io/dukkan/internal/lang"
)

func TestCheckTopic(t *testing.T) {
	gate := NewGate()

	tests := []struct {
		name       string
		message    string
		role       Role
		wantReject bool
		wantText   string
	}{
		{
			name:       "customer asking for sales report",
			message:    "Can I see the sales report?",
			role:       RoleCustomer,
			wantReject: true,
			wantText:   TopicRejection(lang.English),
		},
		{
			name:       "customer asking in arabic",
			message:    "أريد تقرير المبيعات",
			role:       RoleCustomer,
			wantReject: true,
			wantText:   TopicRejection(lang.Arabic),
		},
		{
			name:       "staff asking for report passes",
			message:    "Generate the sales report",
			role:       RoleStaff,
			wantReject: false,
		},
		{
			name:       "customer product question passes",
			message:    "What is the price of Enterprise CRM?",
			role:       RoleCustomer,
			wantReject: false,
		},
		{
			name:       "keyword match is case-insensitive",
			message:    "Show me the DASHBOARD",
			role:       RoleCustomer,
			wantReject: true,
			wantText:   TopicRejection(lang.English),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, rejected := gate.CheckTopic(tt.message, tt.role)
			assert.Equal(t, tt.wantReject, rejected)
			if tt.wantReject {
				assert.Equal(t, tt.wantText, text)
			}
		})
	}
}

func TestCheckAttribute(t *testing.T) {
	gate := NewGate()

	tests := []struct {
		name       string
		message    string
		role       Role
		wantReject bool
		wantText   string
	}{
		{
			name:       "customer asking units sold",
			message:    "How many units sold for the CRM?",
			role:       RoleCustomer,
			wantReject: true,
			wantText:   AttributeRejection(lang.English),
		},
		{
			name:       "customer asking units sold in arabic",
			message:    "كم عدد الوحدات المباعة؟",
			role:       RoleCustomer,
			wantReject: true,
			wantText:   AttributeRejection(lang.Arabic),
		},
		{
			name:       "customer asking earnings",
			message:    "What are your earnings?",
			role:       RoleCustomer,
			wantReject: true,
			wantText:   AttributeRejection(lang.English),
		},
		{
			name:       "staff full access",
			message:    "How many units sold for the CRM?",
			role:       RoleStaff,
			wantReject: false,
		},
		{
			name:       "open attribute passes for customer",
			message:    "What is the description of the HR product?",
			role:       RoleCustomer,
			wantReject: false,
		},
		{
			name:       "price question passes for customer",
			message:    "How much does it cost?",
			role:       RoleCustomer,
			wantReject: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, rejected := gate.CheckAttribute(tt.message, tt.role)
			assert.Equal(t, tt.wantReject, rejected)
			if tt.wantReject {
				assert.Equal(t, tt.wantText, text)
			}
		})
	}
}

func TestDefaultAttributeRulesOrderIsFixed(t *testing.T) {
	rules := DefaultAttributeRules()
	require.Len(t, rules, 6)

	var names []string
	for _, r := range rules {
		names = append(names, r.Attribute)
	}
	assert.Equal(t, []string{"name", "description", "category", "price", "units_sold", "revenue"}, names)

	staffOnly := map[string]bool{}
	for _, r := range rules {
		staffOnly[r.Attribute] = r.StaffOnly
	}
	assert.True(t, staffOnly["units_sold"])
	assert.True(t, staffOnly["revenue"])
	assert.False(t, staffOnly["price"])
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"staff", RoleStaff},
		{"STAFF", RoleStaff},
		{"Customer", RoleCustomer},
		{"customer", RoleCustomer},
		{" staff ", RoleStaff},
		{"admin", RoleCustomer},
		{"", RoleCustomer},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRole(tt.in), "input %q", tt.in)
	}
}

func TestLocalizedTexts(t *testing.T) {
	assert.NotEqual(t, TopicRejection(lang.English), TopicRejection(lang.Arabic))
	assert.NotEqual(t, AttributeRejection(lang.English), AttributeRejection(lang.Arabic))
	assert.NotEqual(t, Apology(lang.English), Apology(lang.Arabic))
}
