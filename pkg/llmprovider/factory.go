package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"support-chat-backend/config"
	"support-chat-backend/pkg/gemini"
	"support-chat-backend/pkg/log"
)

const defaultProviderTimeout = 30 * time.Second

// Default endpoints for OpenAI-compatible providers when base_url is unset.
var defaultBaseURLs = map[string]string{
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers come back sorted by priority with disabled ones filtered out.
// A provider that fails to initialize is skipped with a warning.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var providers []Provider
	var initErrors []string

	for _, p := range cfg.Providers {
		if !p.Enabled {
			continue
		}
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		if len(initErrors) == 0 {
			return nil, ErrNoProvidersConfigured
		}
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout := defaultProviderTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		timeout = d
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "openai", "deepseek", "qwen":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURLs[cfg.Name]
		}
		return NewOpenAIAdapter(cfg.Name, cfg.APIKey, baseURL, cfg.Model, &http.Client{Timeout: timeout}), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
