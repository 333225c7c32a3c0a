// Package intent classifies customer utterances into support intents and
// picks canned replies for them. It backs the mock responder used when no
// language model is configured.
package intent

// Intent is a support topic inferred from a single utterance.
type Intent string

// None marks the absence of a previous intent.
const None Intent = ""

const (
	Greeting              Intent = "greeting"
	ShippingLocation      Intent = "shipping_location"
	ShippingPolicy        Intent = "shipping_policy"
	ShippingClarification Intent = "shipping_clarification"
	DeliveryTime          Intent = "delivery_time"
	TrackingStatus        Intent = "tracking_status"
	ReturnsPolicy         Intent = "returns_policy"
	ProcessInquiry        Intent = "process_inquiry"
	SupportContact        Intent = "support_contact"
	OrderCancellation     Intent = "order_cancellation"
	OutOfScope            Intent = "out_of_scope"
	Fallback              Intent = "fallback"
)

var all = []Intent{
	Greeting,
	ShippingLocation,
	ShippingPolicy,
	ShippingClarification,
	DeliveryTime,
	TrackingStatus,
	ReturnsPolicy,
	ProcessInquiry,
	SupportContact,
	OrderCancellation,
	OutOfScope,
	Fallback,
}

// All returns every intent in declaration order.
func All() []Intent {
	out := make([]Intent, len(all))
	copy(out, all)
	return out
}

// Valid reports whether i is a member of the enumeration. None is not valid.
func (i Intent) Valid() bool {
	for _, known := range all {
		if i == known {
			return true
		}
	}
	return false
}

func (i Intent) String() string {
	if i == None {
		return "none"
	}
	return string(i)
}

// Parse converts a label into an Intent.
func Parse(label string) (Intent, bool) {
	i := Intent(label)
	return i, i.Valid()
}
