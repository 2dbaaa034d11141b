package provider

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvPrefix is the prefix of environment variables read by LoadFromEnv.
const EnvPrefix = "CULINARY_"

// Config holds configuration for creating a provider client.
type Config struct {
	// Provider is the registered provider name. Default: "gemini".
	Provider string `json:"provider" yaml:"provider" toml:"provider" mapstructure:"provider"`

	// Model is the provider-specific model name.
	Model string `json:"model" yaml:"model" toml:"model" mapstructure:"model"`

	// FallbackModel is tried once when the primary model fails with a
	// retryable error. Optional.
	FallbackModel string `json:"fallback_model" yaml:"fallback_model" toml:"fallback_model" mapstructure:"fallback_model"`

	// APIKey authenticates against the provider. Never serialized.
	APIKey string `json:"-" yaml:"-" toml:"-" mapstructure:"api_key"`

	// BaseURL overrides the provider endpoint. Optional.
	BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url" mapstructure:"base_url"`

	// SystemPrompt is the system message prepended to all requests. Optional.
	SystemPrompt string `json:"system_prompt" yaml:"system_prompt" toml:"system_prompt" mapstructure:"system_prompt"`

	// Temperature is the default sampling temperature.
	Temperature float64 `json:"temperature" yaml:"temperature" toml:"temperature" mapstructure:"temperature"`

	// MaxTokens limits response length. 0 uses the provider default.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens" mapstructure:"max_tokens"`

	// Timeout is the maximum duration of one completion request.
	Timeout Duration `json:"timeout" yaml:"timeout" toml:"timeout" mapstructure:"timeout"`

	// Options holds provider-specific configuration.
	Options map[string]any `json:"options" yaml:"options" toml:"options" mapstructure:"options"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:    "gemini",
		Model:       "gemini-2.0-flash",
		Temperature: 0.7,
		MaxTokens:   2048,
		Timeout:     Duration(60 * time.Second),
	}
}

// LoadFromEnv populates config fields from environment variables.
// Variables take precedence over existing values.
//
// Supported variables:
//   - CULINARY_PROVIDER: Provider name
//   - CULINARY_MODEL: Model name
//   - CULINARY_FALLBACK_MODEL: Fallback model name
//   - CULINARY_API_KEY: API key (GEMINI_API_KEY is used when unset)
//   - CULINARY_BASE_URL: Endpoint override
//   - CULINARY_SYSTEM_PROMPT: System prompt
//   - CULINARY_TEMPERATURE: Sampling temperature
//   - CULINARY_MAX_TOKENS: Maximum output tokens
//   - CULINARY_TIMEOUT: Timeout duration (e.g., "90s")
func (c *Config) LoadFromEnv() {
	if v := env("PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := env("MODEL"); v != "" {
		c.Model = v
	}
	if v := env("FALLBACK_MODEL"); v != "" {
		c.FallbackModel = v
	}
	if v := env("API_KEY"); v != "" {
		c.APIKey = v
	} else if v := os.Getenv("GEMINI_API_KEY"); v != "" && c.APIKey == "" {
		c.APIKey = v
	}
	if v := env("BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := env("SYSTEM_PROMPT"); v != "" {
		c.SystemPrompt = v
	}
	if v := env("TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = f
		}
	}
	if v := env("MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = n
		}
	}
	if v := env("TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = Duration(d)
		}
	}
}

func env(name string) string {
	return os.Getenv(EnvPrefix + name)
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %v", c.Temperature)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be >= 0, got %d", c.MaxTokens)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}
	return nil
}

// WithProvider returns a copy of the config with the specified provider.
func (c Config) WithProvider(provider string) Config {
	c.Provider = provider
	return c
}

// WithModel returns a copy of the config with the specified model.
func (c Config) WithModel(model string) Config {
	c.Model = model
	return c
}

// WithOption returns a copy of the config with the specified option set.
func (c Config) WithOption(key string, value any) Config {
	opts := make(map[string]any, len(c.Options)+1)
	for k, v := range c.Options {
		opts[k] = v
	}
	opts[key] = value
	c.Options = opts
	return c
}

// GetStringOption retrieves a string option, returning defaultVal if not set.
func (c Config) GetStringOption(key, defaultVal string) string {
	if v, ok := c.Options[key].(string); ok {
		return v
	}
	return defaultVal
}

// GetBoolOption retrieves a bool option, returning defaultVal if not set.
func (c Config) GetBoolOption(key string, defaultVal bool) bool {
	if v, ok := c.Options[key].(bool); ok {
		return v
	}
	return defaultVal
}

// GetIntOption retrieves an int option, returning defaultVal if not set.
// Numbers decoded from JSON, YAML or TOML are accepted.
func (c Config) GetIntOption(key string, defaultVal int) int {
	switch v := c.Options[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return defaultVal
}

// Duration is a time.Duration that decodes from strings like "90s" in JSON,
// YAML and TOML.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String implements fmt.Stringer.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}
