package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type geminiImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiResp, err := g.callAPI(ctx, g.transformRequest(req))
	if err != nil {
		return nil, err
	}
	return g.transformResponse(geminiResp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

func (g *geminiImpl) callAPI(ctx context.Context, req geminiRequest) (*geminiResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, g.model, g.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}

func (g *geminiImpl) transformRequest(req *Request) geminiRequest {
	out := geminiRequest{
		Contents: make([]geminiContent, len(req.Messages)),
	}

	if req.SystemInstruction != nil {
		out.SystemInstruction = &geminiContent{Parts: transformParts(req.SystemInstruction.Parts)}
	}

	for i, msg := range req.Messages {
		out.Contents[i] = geminiContent{
			Role:  msg.Role,
			Parts: transformParts(msg.Parts),
		}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		out.GenerationConfig = &geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	return out
}

func transformParts(parts []Part) []geminiPart {
	out := make([]geminiPart, len(parts))
	for i, p := range parts {
		out[i] = geminiPart{Text: p.Text}
	}
	return out
}

func (g *geminiImpl) transformResponse(resp *geminiResponse) *Response {
	usage := &Usage{}
	if m := resp.UsageMetadata; m != nil {
		usage.InputTokens = m.PromptTokenCount
		usage.OutputTokens = m.CandidatesTokenCount
		usage.TotalTokens = m.TotalTokenCount
	}

	if len(resp.Candidates) == 0 {
		return &Response{Usage: usage}
	}

	content := resp.Candidates[0].Content
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content: Content{Role: content.Role, Parts: parts},
		Usage:   usage,
	}
}
