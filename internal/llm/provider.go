package llm

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tmplhub/catalogd/internal/config"
	"github.com/tmplhub/catalogd/internal/domain"
)

// ProviderConfig contains the settings a provider client needs.
type ProviderConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// NewProviderFromConfig builds a provider from application configuration.
// Returns ErrLLMNotConfigured when no credential is present; callers treat
// that as "AI features disabled", not a startup failure.
func NewProviderFromConfig(cfg *config.LLMConfig) (domain.LLMProvider, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrLLMNotConfigured
	}

	return NewProvider(ProviderConfig{
		Provider:    cfg.Provider,
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     cfg.Timeout,
	})
}

// NewProvider creates a provider client for the configured backend.
func NewProvider(cfg ProviderConfig) (domain.LLMProvider, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrLLMMissingAPIKey
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg, httpClient)
	case "anthropic":
		return NewAnthropicProvider(cfg, httpClient)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrLLMInvalidProvider, cfg.Provider)
	}
}
