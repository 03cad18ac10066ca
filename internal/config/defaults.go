package config

import (
	"fmt"
	"time"
)

// Default values
const (
	// Server defaults
	DefaultHost = "0.0.0.0"
	DefaultPort = 3001

	// Catalog defaults
	DefaultCatalogDir     = "./catalog"
	DefaultGenerateScript = "scripts/generate-catalog.sh"
	DefaultScriptTimeout  = 60 * time.Second

	// Fetch defaults
	DefaultFetchTimeout       = 30 * time.Second
	DefaultRawFallbackTimeout = 10 * time.Second
	DefaultMaxRedirects       = 5
	DefaultMaxBodyBytes       = 10 * 1024 * 1024

	// LLM defaults
	DefaultLLMProvider = "anthropic"
	DefaultLLMBaseURL  = "https://api.anthropic.com"
	DefaultLLMModel    = "claude-sonnet-4-20250514"
	DefaultLLMTimeout  = 120 * time.Second

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Catalog: CatalogConfig{
			Directory:      DefaultCatalogDir,
			GenerateScript: DefaultGenerateScript,
			ScriptTimeout:  DefaultScriptTimeout,
		},
		Fetch: FetchConfig{
			Timeout:            DefaultFetchTimeout,
			RawFallbackTimeout: DefaultRawFallbackTimeout,
			MaxRedirects:       DefaultMaxRedirects,
			MaxBodyBytes:       DefaultMaxBodyBytes,
		},
		LLM: LLMConfig{
			Provider: DefaultLLMProvider,
			BaseURL:  DefaultLLMBaseURL,
			Model:    DefaultLLMModel,
			Timeout:  DefaultLLMTimeout,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func formatAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
