package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Database  DatabaseConfig
	Chat      ChatConfig
	LLM       LLMConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

func (e EnvironmentConfig) IsProduction() bool {
	return e.Name == EnvProduction
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ChatConfig struct {
	HistoryLimit     int
	MaxMessageLength int
	SessionCacheSize int
	TemplatesPath    string
}

// LLMConfig holds configuration for reply generation. With MockMode set the
// rule-based responder is used and Providers are ignored.
type LLMConfig struct {
	MockMode        bool
	MockMinLatency  time.Duration
	MockMaxLatency  time.Duration
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	Burst           int
	MaxClients      int
	ClientRetention time.Duration
}

// Load reads .env (if present), then config.yaml from ./config, . or
// /etc/app/, then the environment.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	cfg.Environment.Name = firstNonEmpty(v.GetString("node_env"), v.GetString("environment.name"))

	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port > 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	if cfg.Environment.IsProduction() {
		cfg.HTTPServer.Mode = "release"
		cfg.Logger.Mode = "production"
		cfg.Logger.Encoding = "json"
		cfg.Logger.ColorEnabled = false
	}

	cfg.Database.Driver = v.GetString("database.driver")
	cfg.Database.URL = firstNonEmpty(v.GetString("database_url"), v.GetString("database.url"))
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = v.GetDuration("database.conn_max_lifetime")

	cfg.Chat.HistoryLimit = v.GetInt("chat.history_limit")
	cfg.Chat.MaxMessageLength = v.GetInt("chat.max_message_length")
	cfg.Chat.SessionCacheSize = v.GetInt("chat.session_cache_size")
	cfg.Chat.TemplatesPath = v.GetString("chat.templates_path")

	cfg.LLM.MockMode = v.GetBool("llm.mock_mode")
	if v.IsSet("mock_mode") {
		cfg.LLM.MockMode = v.GetBool("mock_mode")
	}
	cfg.LLM.MockMinLatency = v.GetDuration("llm.mock_min_latency")
	cfg.LLM.MockMaxLatency = v.GetDuration("llm.mock_max_latency")
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders(v)

	origins := v.GetString("cors_origin")
	if origins == "" {
		origins = strings.Join(v.GetStringSlice("cors.allowed_origins"), ",")
	}
	cfg.CORS.AllowedOrigins = splitList(origins)

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientRetention = v.GetDuration("rate_limit.client_retention")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", EnvDevelopment)
	v.SetDefault("http_server.port", 3001)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("chat.history_limit", 10)
	v.SetDefault("chat.max_message_length", 1000)
	v.SetDefault("chat.session_cache_size", 0)

	v.SetDefault("llm.mock_mode", false)
	v.SetDefault("llm.mock_min_latency", "500ms")
	v.SetDefault("llm.mock_max_latency", "1s")
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("rate_limit.max_clients", 10000)
	v.SetDefault("rate_limit.client_retention", "10m")
}

// loadProviders reads llm.providers. When none are configured but
// GEMINI_API_KEY is set, a single Gemini provider is synthesised.
func loadProviders(v *viper.Viper) []ProviderConfig {
	var providers []ProviderConfig
	if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
		for _, p := range providersList {
			providerMap, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			providers = append(providers, ProviderConfig{
				Name:     getStringFromMap(providerMap, "name"),
				Enabled:  getBoolFromMap(providerMap, "enabled"),
				Priority: getIntFromMap(providerMap, "priority"),
				APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
				BaseURL:  getStringFromMap(providerMap, "base_url"),
				Model:    getStringFromMap(providerMap, "model"),
				Timeout:  getStringFromMap(providerMap, "timeout"),
			})
		}
	}

	geminiKey := v.GetString("gemini_api_key")
	if len(providers) == 0 && geminiKey != "" {
		providers = append(providers, ProviderConfig{
			Name:     "gemini",
			Enabled:  true,
			Priority: 1,
			APIKey:   geminiKey,
			Model:    "gemini-2.5-flash",
			Timeout:  "30s",
		})
	}

	sort.SliceStable(providers, func(i, j int) bool {
		return providers[i].Priority < providers[j].Priority
	})
	return providers
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	switch c.Environment.Name {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("invalid environment %q", c.Environment.Name)
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http port %d", c.HTTPServer.Port)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Chat.HistoryLimit <= 0 {
		return fmt.Errorf("chat.history_limit must be positive")
	}
	if c.Chat.MaxMessageLength <= 0 {
		return fmt.Errorf("chat.max_message_length must be positive")
	}
	if c.Chat.SessionCacheSize < 0 {
		return fmt.Errorf("chat.session_cache_size must not be negative")
	}

	if c.LLM.MockMode {
		if c.LLM.MockMinLatency < 0 || c.LLM.MockMaxLatency < c.LLM.MockMinLatency {
			return fmt.Errorf("invalid mock latency range [%s, %s)", c.LLM.MockMinLatency, c.LLM.MockMaxLatency)
		}
		return nil
	}
	return validateLLMConfig(&c.LLM)
}

// validateLLMConfig validates the provider list used outside mock mode.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("GEMINI_API_KEY is required when MOCK_MODE is not enabled")
	}

	usable := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
		if provider.APIKey != "" {
			usable++
		}
	}

	if usable == 0 {
		return fmt.Errorf("no enabled LLM provider has an API key")
	}
	return nil
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return 0
}
