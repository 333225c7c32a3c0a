package intent

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"support-chat-backend/internal/knowledge"
)

// EmptyMessageReply is returned for blank input.
const EmptyMessageReply = "Please enter a message so I can help you."

// Templates maps every intent to its candidate replies.
type Templates map[Intent][]string

var (
	delivery = knowledge.DeliveryWindow
	refund   = knowledge.RefundWindow
	days     = knowledge.ReturnWindowDays
)

// DefaultTemplates returns the built-in reply table.
func DefaultTemplates() Templates {
	return Templates{
		Greeting: {
			"Hello! How can I help you today?",
			"Hi there! I'm here to help with shipping, returns, and order questions.",
			"Greetings! How may I assist you with your store inquiries?",
		},
		ShippingClarification: {
			"Are you asking about delivery time, tracking, or shipping locations?",
		},
		ShippingLocation: {
			fmt.Sprintf("Yes, we ship to that location. Standard delivery takes %s.", delivery),
			fmt.Sprintf("We certainly ship there. You can expect your order in %s via our standard shipping.", delivery),
			fmt.Sprintf("Yes, our %s shipping covers your region. Delivery typically takes %s.", knowledge.ShippingCoverage, delivery),
		},
		ShippingPolicy: {
			fmt.Sprintf("We ship %s using standard shipping. Do you need delivery times or tracking details?", knowledge.ShippingCoverage),
			fmt.Sprintf("Yes, we offer %s shipping. Standard delivery is %s.", knowledge.ShippingCoverage, delivery),
			fmt.Sprintf("Our shipping services cover most global destinations with delivery in %s.", delivery),
		},
		DeliveryTime: {
			fmt.Sprintf("Standard delivery typically takes %s.", delivery),
			fmt.Sprintf("You can expect your order to arrive within %s.", delivery),
			fmt.Sprintf("Orders are usually delivered in %s.", delivery),
		},
		TrackingStatus: {
			"Once your order ships, we email tracking details so you can check its status.",
			"You will receive an automated email with tracking details as soon as your package leaves our warehouse.",
			"Tracking information is sent via email immediately upon shipment.",
		},
		ReturnsPolicy: {
			fmt.Sprintf("We have a %d-day return policy for items that are %s. Refunds are processed in %s.", days, knowledge.ReturnCondition, refund),
			fmt.Sprintf("You can return items within %d days if they are %s. We process refunds within %s of receiving the return.", days, knowledge.ReturnCondition, refund),
			fmt.Sprintf("Our policy allows returns within %d days of delivery for items that are %s.", days, knowledge.ReturnCondition),
		},
		ProcessInquiry: {
			"To place a return, simply contact support. For shipping, we handle everything automatically once you order.",
			fmt.Sprintf("The process is simple: orders arrive in %s, and returns are accepted within %d days of delivery.", delivery, days),
		},
		SupportContact: {
			fmt.Sprintf("Our support team is online %s. You can reach us at %s during those hours.", knowledge.SupportSchedule(), knowledge.SupportEmail),
			fmt.Sprintf("You can contact human support %s.", knowledge.SupportSchedule()),
		},
		OrderCancellation: {
			"You can cancel your order before it has been shipped. Please contact our support team with your order ID to request cancellation.",
		},
		OutOfScope: {
			"I apologize, but I can only assist with questions regarding shipping, returns, and store policies.",
			"I don't have information about discounts. I can only help with store policies.",
			"My expertise is limited to shipping, returns, and general support inquiries.",
		},
		Fallback: {
			"I can help with shipping, returns, or support hours. Could you tell me a bit more?",
			"I'm not sure I understood. Are you asking about an order or our policies?",
		},
	}
}

// Validate checks that every intent has at least one non-empty reply.
func (t Templates) Validate() error {
	for _, in := range all {
		replies := t[in]
		if len(replies) == 0 {
			return fmt.Errorf("intent %s: no templates", in)
		}
		for i, r := range replies {
			if r == "" {
				return fmt.Errorf("intent %s: template %d is empty", in, i)
			}
		}
	}
	for in := range t {
		if !in.Valid() {
			return fmt.Errorf("unknown intent %q", string(in))
		}
	}
	return nil
}

// LoadTemplates reads a YAML document of the form
//
//	greeting:
//	  - "Hello!"
//	fallback:
//	  - "Sorry?"
//
// Intents it names replace the built-in replies; the rest keep the defaults.
func LoadTemplates(r io.Reader) (Templates, error) {
	var raw map[string][]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode templates: %w", err)
	}

	out := DefaultTemplates()
	for label, replies := range raw {
		in, ok := Parse(label)
		if !ok {
			return nil, fmt.Errorf("unknown intent %q", label)
		}
		out[in] = replies
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadTemplatesFile is LoadTemplates over a file.
func LoadTemplatesFile(path string) (Templates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open templates: %w", err)
	}
	defer f.Close()

	return LoadTemplates(f)
}
