package responder

import (
	"context"
	"strings"
	"time"

	"support-chat-backend/internal/intent"
	"support-chat-backend/internal/model"
	"support-chat-backend/pkg/log"
)

// MockConfig configures the rule-based responder. Latency is drawn from
// [MinLatency, MaxLatency) to mimic a model round trip.
type MockConfig struct {
	Selector   *intent.Selector
	MinLatency time.Duration
	MaxLatency time.Duration
	// Source drives the latency draw; nil uses the shared random source.
	Source intent.Source
}

// Mock answers from canned templates without calling any model.
type Mock struct {
	selector *intent.Selector
	min, max time.Duration
	source   intent.Source
	l        log.Logger
}

func NewMock(cfg MockConfig, l log.Logger) (*Mock, error) {
	selector := cfg.Selector
	if selector == nil {
		var err error
		if selector, err = intent.NewSelector(intent.SelectorConfig{}); err != nil {
			return nil, err
		}
	}
	source := cfg.Source
	if source == nil {
		source = intent.NewSeededSource(uint64(time.Now().UnixNano()))
	}
	maxLatency := max(cfg.MaxLatency, cfg.MinLatency)
	return &Mock{
		selector: selector,
		min:      max(cfg.MinLatency, 0),
		max:      maxLatency,
		source:   source,
		l:        l,
	}, nil
}

// Generate answers the last message of history. The session's intent is
// keyed by the message's conversation id.
func (m *Mock) Generate(ctx context.Context, history []model.Message) (string, error) {
	if len(history) == 0 {
		return intent.EmptyMessageReply, nil
	}
	last := history[len(history)-1]
	if strings.TrimSpace(last.Text) == "" {
		return intent.EmptyMessageReply, nil
	}

	if err := m.wait(ctx); err != nil {
		return "", err
	}

	turn := m.selector.Resolve(last.ConversationID, last.Text)
	m.l.Info(ctx, "mock reply generated",
		"conversation_id", last.ConversationID,
		"intent", turn.Intent.String(),
		"previous_intent", turn.Previous.String(),
		"rule", turn.Rule,
		"carried_over", turn.CarriedOver,
	)
	return turn.Reply, nil
}

func (m *Mock) wait(ctx context.Context) error {
	d := m.min
	if spread := m.max - m.min; spread > 0 {
		d += time.Duration(m.source.IntN(int(spread)))
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
