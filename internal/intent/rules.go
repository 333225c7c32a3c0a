package intent

// Rule is one entry of the ordered classification table.
type Rule struct {
	Name  string
	Match func(u Utterance) (Intent, bool)
}

// when builds a rule that yields intent whenever pred holds.
func when(name string, intent Intent, pred func(u Utterance) bool) Rule {
	return Rule{
		Name: name,
		Match: func(u Utterance) (Intent, bool) {
			if pred(u) {
				return intent, true
			}
			return None, false
		},
	}
}

var (
	outOfScopeWords = vocab("discount", "coupon", "promo", "code", "price", "cost", "competitor", "cheap", "deal", "sale")
	greetingWords   = vocab("hello", "hlo", "greetings", "namaste", "good morning", "good afternoon", "good evening")

	trackWords        = vocab("track", "tracking number")
	whereWords        = vocab("where")
	whereObjects      = vocab("order", "package", "shipping", "shipment", "item", "stuff")
	statusWords       = vocab("status")
	statusObjects     = vocab("order", "shipping", "shipment")
	shortShipWords    = vocab("shipping", "delivery", "ship", "deliver")
	cancellationWords = vocab("cancel", "cancel order", "cancel my order", "cancel product", "cancel my product", "stop my order", "i want to cancel")

	durationQuestion = vocab("how long", "when")
	arrivalVerbs     = vocab("arrive", "get", "take", "deliver", "receive", "reach")
	durationNames    = vocab("delivery time", "shipping time", "duration")

	geographyWords  = vocab("international", "worldwide", "globally", "overseas", "outside country", "ship to", "deliver to", "send to")
	dispatchVerbs   = vocab("ship", "deliver", "send")
	placePrepos     = vocab("to", "in", "at")
	shippingWords   = vocab("shipping", "delivery")
	timingWords     = vocab("time", "long")
	whereaboutWords = vocab("track", "where", "status")

	returnWords  = vocab("return", "refund", "exchange", "back")
	processWords = vocab("process", "how to", "steps", "procedure", "do i need to")
	supportWords = vocab("support", "contact", "email", "phone", "help", "human", "agent")

	shippingTopics      = map[Intent]bool{ShippingLocation: true, ShippingPolicy: true, TrackingStatus: true}
	followUpTimingWords = vocab("long", "time", "days", "when", "arrive")
	followUpTrackWords  = vocab("where", "status", "it")
)

// DefaultRules returns the classification table. Order matters: the first
// matching rule wins, so pricing chatter never reaches a domain intent and
// explicit tracking beats the generic shipping rule.
func DefaultRules() []Rule {
	return []Rule{
		when("out_of_scope", OutOfScope, func(u Utterance) bool {
			return outOfScopeWords.in(u.Tokens)
		}),
		when("greeting", Greeting, func(u Utterance) bool {
			if greetingWords.in(u.Tokens) {
				return true
			}
			for _, t := range u.Tokens {
				if elongated(t, "hi") || elongated(t, "hey") {
					return true
				}
			}
			return false
		}),
		when("tracking_explicit", TrackingStatus, func(u Utterance) bool {
			return trackWords.in(u.Tokens)
		}),
		when("tracking_where", TrackingStatus, func(u Utterance) bool {
			return followedBy(u.Tokens, whereWords, whereObjects)
		}),
		when("tracking_status", TrackingStatus, func(u Utterance) bool {
			return followedBy(u.Tokens, statusWords, statusObjects)
		}),
		// Only on the first turn of a topic: "shipping?" alone is too vague.
		when("shipping_ambiguous", ShippingClarification, func(u Utterance) bool {
			return u.WordCount() <= 2 && u.Previous == None && shortShipWords.in(u.Tokens)
		}),
		when("cancellation", OrderCancellation, func(u Utterance) bool {
			return cancellationWords.in(u.Tokens)
		}),
		when("delivery_time_question", DeliveryTime, func(u Utterance) bool {
			return followedBy(u.Tokens, durationQuestion, arrivalVerbs)
		}),
		when("delivery_time_named", DeliveryTime, func(u Utterance) bool {
			return durationNames.in(u.Tokens)
		}),
		when("shipping_location", ShippingLocation, func(u Utterance) bool {
			return geographyWords.in(u.Tokens) || followedBy(u.Tokens, dispatchVerbs, placePrepos)
		}),
		{
			Name: "shipping_generic",
			Match: func(u Utterance) (Intent, bool) {
				if !shippingWords.in(u.Tokens) {
					return None, false
				}
				switch {
				case timingWords.in(u.Tokens):
					return DeliveryTime, true
				case whereaboutWords.in(u.Tokens):
					return TrackingStatus, true
				default:
					return ShippingPolicy, true
				}
			},
		},
		when("returns", ReturnsPolicy, func(u Utterance) bool {
			return returnWords.in(u.Tokens)
		}),
		when("process", ProcessInquiry, func(u Utterance) bool {
			return processWords.in(u.Tokens)
		}),
		when("support", SupportContact, func(u Utterance) bool {
			return supportWords.in(u.Tokens)
		}),
		{
			Name: "context_follow_up",
			Match: func(u Utterance) (Intent, bool) {
				if shippingTopics[u.Previous] && followUpTimingWords.in(u.Tokens) {
					return DeliveryTime, true
				}
				if u.Previous == TrackingStatus && followUpTrackWords.in(u.Tokens) {
					return TrackingStatus, true
				}
				return None, false
			},
		},
	}
}
