package responder

import (
	"context"
	"errors"
	"strings"

	"support-chat-backend/internal/knowledge"
	"support-chat-backend/internal/model"
	"support-chat-backend/pkg/llmprovider"
	"support-chat-backend/pkg/log"
)

const (
	EmptyReplyFallback = "I apologize, I couldn't generate a response. Please contact our support team directly at " +
		knowledge.SupportEmail + "."
	RateLimitedReply = "I’m currently handling a high volume of requests. Please try again shortly."
)

// ErrorReply is sent for any provider failure other than rate limiting.
var ErrorReply = "I apologize, but I'm having trouble processing your request at the moment. " +
	"Please try again or contact our support team directly at " + knowledge.SupportEmail +
	" (" + knowledge.SupportSchedule() + ")."

// Generator is satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLM answers through a language model. Provider failures are turned into
// customer-safe replies and never returned as errors.
type LLM struct {
	gen    Generator
	system string
	l      log.Logger
}

func NewLLM(gen Generator, l log.Logger) *LLM {
	return &LLM{gen: gen, system: SystemPrompt(), l: l}
}

func (r *LLM) Generate(ctx context.Context, history []model.Message) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: r.system,
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Text: userPrompt(history)},
		},
	}

	r.l.Infof(ctx, "responder.LLM.Generate: calling model with %d messages", len(history))

	resp, err := r.gen.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(err, llmprovider.ErrProviderRateLimited) {
			r.l.Warnf(ctx, "responder.LLM.Generate: rate limited: %v", err)
			return RateLimitedReply, nil
		}
		if errors.Is(err, llmprovider.ErrProviderTimeout) {
			r.l.Warnf(ctx, "responder.LLM.Generate: providers timed out: %v", err)
			return ErrorReply, nil
		}
		r.l.Errorf(ctx, "responder.LLM.Generate: %v", err)
		return ErrorReply, nil
	}

	text := strings.TrimSpace(resp.Text)
	r.l.Debugf(ctx, "responder.LLM.Generate: provider=%s model=%s length=%d", resp.ProviderName, resp.ModelName, len(text))
	if text == "" {
		return EmptyReplyFallback, nil
	}
	return text, nil
}
