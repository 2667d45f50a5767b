package policy

import "github.com/sahla-io/dukkan/internal/lang"

// Localized user-facing texts returned by the gates and the router. They are
// policy outcomes, not errors: always well-formed text in exactly one
// language.
const (
	topicRejectionEN = "Sales reports and analytics are only available to staff members. I can help you with product information instead."
	topicRejectionAR = "تقارير المبيعات والتحليلات متاحة فقط لموظفي الشركة. يمكنني مساعدتك بمعلومات عن المنتجات بدلاً من ذلك."

	attributeRejectionEN = "This information is available to staff only."
	attributeRejectionAR = "هذه المعلومة متاحة فقط لموظفي الشركة."

	apologyEN = "I apologize, but I'm experiencing technical difficulties. Please try again later."
	apologyAR = "أعتذر، أواجه حالياً صعوبات تقنية. يرجى المحاولة مرة أخرى لاحقاً."
)

// TopicRejection is the staff-only rejection for report-seeking questions.
func TopicRejection(l lang.Language) string {
	if l == lang.Arabic {
		return topicRejectionAR
	}
	return topicRejectionEN
}

// AttributeRejection is the rejection for staff-only product attributes.
func AttributeRejection(l lang.Language) string {
	if l == lang.Arabic {
		return attributeRejectionAR
	}
	return attributeRejectionEN
}

// Apology is the fixed user-facing text substituted when the model service
// fails. Localized to the detected input language; the underlying cause goes
// to the operator log only.
func Apology(l lang.Language) string {
	if l == lang.Arabic {
		return apologyAR
	}
	return apologyEN
}
