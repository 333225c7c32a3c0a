package gemini

import (
	"errors"
	"net/http"
	"time"
)

// Config configures a Gemini client.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// Request is a generation request.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Temperature       float64
	MaxTokens         int
}

// Response is a generation result.
type Response struct {
	Content Content
	Usage   *Usage
}

// Text concatenates the text parts of the response.
func (r *Response) Text() string {
	var out string
	for _, p := range r.Content.Parts {
		out += p.Text
	}
	return out
}

// Content is a single conversation turn.
type Content struct {
	Role  string
	Parts []Part
}

// Part is a text segment.
type Part struct {
	Text string
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// --- wire format ---

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate    `json:"candidates"`
	UsageMetadata *geminiUsageMetadata `json:"usageMetadata,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiUsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}
