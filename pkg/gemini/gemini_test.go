package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"support-chat-backend/pkg/gemini"
)

type wireRequest struct {
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"system_instruction"`
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req wireRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.Contents[0].Parts[0].Text {
		case "cause_429":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"quota"}`))
			return
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "be nice" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{ "content": { "parts": [ { "text": "mocked " }, { "text": "reply" } ], "role": "model" } }
			],
			"usageMetadata": { "promptTokenCount": 10, "candidatesTokenCount": 3, "totalTokenCount": 13 }
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	request := func(text string) *gemini.Request {
		return &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be nice"}}},
			Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: text}}}},
		}
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), request("Hello"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "mocked reply" {
			t.Errorf("unexpected text: %q", resp.Text())
		}
		if resp.Usage.TotalTokens != 13 || resp.Usage.InputTokens != 10 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Rate Limited", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), request("cause_429"))
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if !apiErr.RateLimited() {
			t.Errorf("expected rate limited error, got status %d", apiErr.StatusCode)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), request("cause_500"))
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.RateLimited() {
			t.Fatalf("expected non rate-limit APIError, got %v", err)
		}
	})
}

func TestNew_Validation(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Errorf("expected error without API key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", client.Model())
	}
}
