package intent

import (
	"strings"
	"unicode/utf8"
)

// carryOverMaxLen is the rune length below which an unclassified utterance
// may inherit the previous topic.
const carryOverMaxLen = 20

var softWords = map[string]bool{
	"shipping": true, "delivery": true, "order": true, "cancel": true,
	"product": true, "item": true, "return": true, "refund": true,
	"track": true, "status": true, "it": true, "that": true,
	"how": true, "when": true, "where": true, "international": true,
	"worldwide": true, "globally": true, "overseas": true,
}

// Turn is the outcome of resolving one utterance.
type Turn struct {
	Reply       string
	Intent      Intent
	Previous    Intent
	Rule        string
	CarriedOver bool
}

// SelectorConfig wires a Selector. Nil fields get defaults.
type SelectorConfig struct {
	Classifier *Classifier
	Store      SessionStore
	Templates  Templates
	Source     Source
}

// Selector resolves turns and tracks the last intent per session.
type Selector struct {
	classifier *Classifier
	store      SessionStore
	templates  Templates
	source     Source
}

// NewSelector creates a Selector. Templates, when given, must pass Validate.
func NewSelector(cfg SelectorConfig) (*Selector, error) {
	s := &Selector{
		classifier: cfg.Classifier,
		store:      cfg.Store,
		templates:  cfg.Templates,
		source:     cfg.Source,
	}
	if s.classifier == nil {
		s.classifier = NewClassifier()
	}
	if s.store == nil {
		s.store = NewMemoryStore()
	}
	if s.templates == nil {
		s.templates = DefaultTemplates()
	}
	if s.source == nil {
		s.source = globalSource{}
	}

	if err := s.templates.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Resolve classifies utterance in the context of sessionID, picks a reply and
// records the resolved intent. Blank input leaves the session untouched.
func (s *Selector) Resolve(sessionID, utterance string) Turn {
	if strings.TrimSpace(utterance) == "" {
		return Turn{Reply: EmptyMessageReply, Intent: Fallback, Rule: FallbackRule}
	}

	previous, _ := s.store.Get(sessionID)
	resolved, rule := s.classifier.Explain(utterance, previous)

	turn := Turn{Intent: resolved, Previous: previous, Rule: rule}
	if resolved == Fallback && previous.Valid() && carriesOver(utterance) {
		turn.Intent = previous
		turn.CarriedOver = true
	}

	turn.Reply = s.pick(turn.Intent)
	s.store.Set(sessionID, turn.Intent)
	return turn
}

// Previous returns the stored intent for sessionID.
func (s *Selector) Previous(sessionID string) (Intent, bool) {
	return s.store.Get(sessionID)
}

// Templates returns the replies configured for in.
func (s *Selector) Templates(in Intent) []string {
	out := make([]string, len(s.templates[in]))
	copy(out, s.templates[in])
	return out
}

func (s *Selector) pick(in Intent) string {
	replies := s.templates[in]
	if len(replies) == 1 {
		return replies[0]
	}
	return replies[s.source.IntN(len(replies))]
}

// carriesOver reports whether a short utterance looks like an elliptical
// follow-up ("and it?", "what about that").
func carriesOver(raw string) bool {
	if utf8.RuneCountInString(raw) >= carryOverMaxLen {
		return false
	}
	for _, w := range words(raw) {
		if softWords[w] {
			return true
		}
	}
	return false
}
