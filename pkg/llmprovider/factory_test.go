package llmprovider

import (
	"context"
	"errors"
	"testing"

	"support-chat-backend/config"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "g", Model: "gemini-2.5-flash", Timeout: "30s"},
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "d", Model: "deepseek-chat"},
			{Name: "openai", Enabled: false, Priority: 3, APIKey: "o", Model: "gpt-4o-mini"},
			{Name: "unknown", Enabled: true, Priority: 4, APIKey: "u", Model: "x"},
		},
	}
	logger := &mockLogger{}

	providers, err := InitializeProviders(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "gemini" || providers[1].Name() != "deepseek" {
		t.Errorf("unexpected provider order: %s, %s", providers[0].Name(), providers[1].Name())
	}
	if providers[1].Model() != "deepseek-chat" {
		t.Errorf("unexpected model: %s", providers[1].Model())
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("expected a warning for the unknown provider, got %d", len(logger.warnMessages))
	}
}

func TestInitializeProviders_Errors(t *testing.T) {
	if _, err := InitializeProviders(context.Background(), nil, &mockLogger{}); err == nil {
		t.Error("expected error for nil config")
	}

	_, err := InitializeProviders(context.Background(), &config.LLMConfig{}, &mockLogger{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}

	_, err = InitializeProviders(context.Background(), &config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "gemini", Enabled: true, Priority: 1, Model: "m"},
	}}, &mockLogger{})
	if err == nil {
		t.Error("expected error when every provider fails to initialize")
	}
}

func TestCreateProvider_InvalidTimeout(t *testing.T) {
	_, err := createProvider(config.ProviderConfig{Name: "openai", APIKey: "k", Model: "m", Timeout: "soon"})
	if err == nil {
		t.Error("expected error for invalid timeout")
	}
}
