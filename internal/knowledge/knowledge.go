// Package knowledge holds the store facts quoted to customers. Canned replies
// and the LLM system prompt are both rendered from these values.
package knowledge

import (
	"fmt"
	"strings"
)

const (
	ShippingCoverage = "worldwide"
	DeliveryWindow   = "5–7 business days"
	ReturnWindowDays = 7
	ReturnCondition  = "unused and in original packaging"
	RefundWindow     = "5–7 business days"
	SupportDays      = "Monday to Friday"
	SupportHours     = "10:00 AM – 6:00 PM IST"
	SupportEmail     = "support@example.com"
)

// SupportSchedule is the human-readable support availability.
func SupportSchedule() string {
	return fmt.Sprintf("%s, %s", SupportDays, SupportHours)
}

// Render returns the knowledge base as it is embedded in the system prompt.
func Render() string {
	var b strings.Builder
	b.WriteString("Shipping:\n")
	fmt.Fprintf(&b, "- %s shipping available\n", capitalize(ShippingCoverage))
	fmt.Fprintf(&b, "- Delivery time: %s\n", DeliveryWindow)
	b.WriteString("- Tracking details are emailed once the order ships\n\n")
	b.WriteString("Returns:\n")
	fmt.Fprintf(&b, "- %d-day return policy from delivery date\n", ReturnWindowDays)
	fmt.Fprintf(&b, "- Items must be %s\n", ReturnCondition)
	fmt.Fprintf(&b, "- Refunds processed within %s after return receipt\n\n", RefundWindow)
	b.WriteString("Support:\n")
	fmt.Fprintf(&b, "- Available %s", SupportSchedule())
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
