package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"support-chat-backend/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != "" {
		geminiReq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: req.SystemInstruction}}}
	}
	for _, m := range req.Messages {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		geminiReq.Messages = append(geminiReq.Messages, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: m.Text}},
		})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) && apiErr.RateLimited() {
			return nil, &ProviderError{Provider: a.Name(), Err: errors.Join(ErrProviderRateLimited, err)}
		}
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string {
	return "gemini"
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// ChatCompleter is the subset of *openai.Client used by OpenAIAdapter.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAdapter serves any OpenAI-compatible chat completion API
// (OpenAI itself, DeepSeek, Qwen/DashScope) through go-openai.
type OpenAIAdapter struct {
	name   string
	model  string
	client ChatCompleter
}

// NewOpenAIAdapter builds an adapter for an OpenAI-compatible endpoint.
// An empty baseURL keeps the go-openai default.
func NewOpenAIAdapter(name, apiKey, baseURL, model string, httpClient *http.Client) *OpenAIAdapter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAIAdapter{name: name, model: model, client: openai.NewClientWithConfig(cfg)}
}

func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Text})
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		if openAIStatus(err) == http.StatusTooManyRequests {
			return nil, &ProviderError{Provider: a.name, Err: errors.Join(ErrProviderRateLimited, err)}
		}
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	out := &Response{
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if out.ModelName == "" {
		out.ModelName = a.model
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

func (a *OpenAIAdapter) Name() string {
	return a.name
}

func (a *OpenAIAdapter) Model() string {
	return a.model
}

func openAIStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
