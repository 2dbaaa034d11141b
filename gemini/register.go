package gemini

import "github.com/randalmurphal/culinary/provider"

func init() {
	provider.Register(providerName, NewFromConfig)
}

// NewFromConfig creates a Client from a provider.Config.
// This is the factory registered with the provider registry.
func NewFromConfig(cfg provider.Config) (provider.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []Option{
		WithAPIKey(cfg.APIKey),
		WithTemperature(cfg.Temperature),
		WithAPIVersion(cfg.GetStringOption("api_version", DefaultAPIVersion)),
	}
	if cfg.Model != "" {
		opts = append(opts, WithModel(cfg.Model))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.SystemPrompt != "" {
		opts = append(opts, WithSystemPrompt(cfg.SystemPrompt))
	}
	if cfg.MaxTokens > 0 {
		opts = append(opts, WithMaxTokens(cfg.MaxTokens))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, WithTimeout(cfg.Timeout.Std()))
	}

	return New(opts...), nil
}
