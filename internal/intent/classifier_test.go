package intent

import (
	"strings"
	"testing"
)

func TestClassifier_Rules(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		input    string
		previous Intent
		want     Intent
		rule     string
	}{
		{"discount", "Any discount codes?", None, OutOfScope, "out_of_scope"},
		{"out of scope beats greeting", "hello, any discount codes?", None, OutOfScope, "out_of_scope"},
		{"greeting", "Hello there", None, Greeting, "greeting"},
		{"elongated hi", "hiiii", None, Greeting, "greeting"},
		{"elongated hey", "heyyy!", None, Greeting, "greeting"},
		{"greeting phrase", "good morning team", None, Greeting, "greeting"},
		{"fullwidth greeting", "ＨＥＬＬＯ", None, Greeting, "greeting"},
		{"greeting beats tracking", "hello I want to track", None, Greeting, "greeting"},
		{"track", "I want to track my package", None, TrackingStatus, "tracking_explicit"},
		{"tracking number", "what is the tracking number", None, TrackingStatus, "tracking_explicit"},
		{"where is shipment", "where is my shipment", None, TrackingStatus, "tracking_where"},
		{"status of order", "what's the status of my order", None, TrackingStatus, "tracking_status"},
		{"ambiguous shipping", "shipping?", None, ShippingClarification, "shipping_ambiguous"},
		{"ambiguous beats cancel", "cancel shipping", None, ShippingClarification, "shipping_ambiguous"},
		{"cancel with context", "cancel shipping", Greeting, OrderCancellation, "cancellation"},
		{"cancel order", "I want to cancel my order", None, OrderCancellation, "cancellation"},
		{"how long arrive", "how long will it take to arrive", None, DeliveryTime, "delivery_time_question"},
		{"when arrive", "when will my package arrive", None, DeliveryTime, "delivery_time_question"},
		{"delivery time", "what is the delivery time", None, DeliveryTime, "delivery_time_named"},
		{"international", "do you offer international shipping", None, ShippingLocation, "shipping_location"},
		{"ship to", "can you ship to canada", None, ShippingLocation, "shipping_location"},
		{"where ship to", "where do you ship to", None, ShippingLocation, "shipping_location"},
		{"deliver in", "do you deliver in berlin", None, ShippingLocation, "shipping_location"},
		{"generic shipping", "tell me about shipping options", None, ShippingPolicy, "shipping_generic"},
		{"short shipping with context", "shipping?", ShippingPolicy, ShippingPolicy, "shipping_generic"},
		{"generic shipping timing", "shipping takes a long time?", None, DeliveryTime, "shipping_generic"},
		{"generic shipping status", "delivery status please", None, TrackingStatus, "shipping_generic"},
		{"refund", "I need a refund", None, ReturnsPolicy, "returns"},
		{"send back", "can I send it back", None, ReturnsPolicy, "returns"},
		{"steps", "what are the steps", None, ProcessInquiry, "process"},
		{"how to", "how to place an order", None, ProcessInquiry, "process"},
		{"human", "I need to talk to a human", None, SupportContact, "support"},
		{"agent", "is your agent available", None, SupportContact, "support"},
		{"follow up days", "how many days", ShippingLocation, DeliveryTime, "context_follow_up"},
		{"follow up tracking", "is it here yet", TrackingStatus, TrackingStatus, "context_follow_up"},
		{"no follow up from greeting", "what about it", Greeting, Fallback, FallbackRule},
		{"substring code", "I love my codec", None, Fallback, FallbackRule},
		{"substring back", "the backpack", None, Fallback, FallbackRule},
		{"substring hi", "this thing", None, Fallback, FallbackRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := c.Explain(tt.input, tt.previous)
			if got != tt.want {
				t.Errorf("Classify(%q, %s) = %s, want %s", tt.input, tt.previous, got, tt.want)
			}
			if rule != tt.rule {
				t.Errorf("Classify(%q, %s) fired rule %s, want %s", tt.input, tt.previous, rule, tt.rule)
			}
		})
	}
}

func TestClassifier_Totality(t *testing.T) {
	c := NewClassifier()

	inputs := []string{
		"",
		"   ",
		"\t\n",
		"!!!???",
		"¿Dónde está mi pedido?",
		"配送はいつですか",
		"😀😀😀",
		strings.Repeat("lorem ipsum ", 500),
		"\x00\xff",
	}

	for _, in := range inputs {
		for _, prev := range append(All(), None, Intent("bogus")) {
			got := c.Classify(in, prev)
			if !got.Valid() {
				t.Errorf("Classify(%q, %s) returned invalid intent %q", in, prev, got)
			}
		}
	}
}

func TestClassifier_InvalidPreviousIsIgnored(t *testing.T) {
	c := NewClassifier()

	if got := c.Classify("shipping?", Intent("bogus")); got != ShippingClarification {
		t.Errorf("expected unknown previous intent to count as none, got %s", got)
	}
}

func TestClassifier_TrackingBeatsGenericShipping(t *testing.T) {
	c := NewClassifier()

	for _, prev := range append(All(), None) {
		if got := c.Classify("where is my shipment", prev); got != TrackingStatus {
			t.Errorf("previous %s: expected tracking_status, got %s", prev, got)
		}
	}
}

func TestDefaultRules_Names(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range DefaultRules() {
		if r.Name == "" || r.Match == nil {
			t.Fatalf("rule %+v is incomplete", r)
		}
		if seen[r.Name] {
			t.Errorf("duplicate rule name %s", r.Name)
		}
		seen[r.Name] = true
	}
}
