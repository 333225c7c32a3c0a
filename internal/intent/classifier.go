package intent

// FallbackRule names the implicit last rule.
const FallbackRule = "fallback"

// Classifier maps an utterance to exactly one Intent. It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a Classifier over DefaultRules.
func NewClassifier() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// Classify returns the intent of utterance given the previous turn's intent
// (None when there is none). It never fails.
func (c *Classifier) Classify(utterance string, previous Intent) Intent {
	in, _ := c.Explain(utterance, previous)
	return in
}

// Explain is Classify that also reports the name of the rule that fired.
func (c *Classifier) Explain(utterance string, previous Intent) (Intent, string) {
	if !previous.Valid() {
		previous = None
	}

	u := Normalize(utterance, previous)
	for _, r := range c.rules {
		if in, ok := r.Match(u); ok {
			return in, r.Name
		}
	}
	return Fallback, FallbackRule
}
