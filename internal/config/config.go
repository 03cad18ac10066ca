package config

import (
	"time"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Fetch   FetchConfig   `mapstructure:"fetch" yaml:"fetch"`
	LLM     LLMConfig     `mapstructure:"llm" yaml:"llm"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// CatalogConfig contains catalog tree settings
type CatalogConfig struct {
	Directory      string        `mapstructure:"directory" yaml:"directory"`
	GenerateScript string        `mapstructure:"generate_script" yaml:"generate_script"`
	ScriptTimeout  time.Duration `mapstructure:"script_timeout" yaml:"script_timeout"`
}

// FetchConfig contains HTTP retrieval settings
type FetchConfig struct {
	Timeout            time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RawFallbackTimeout time.Duration `mapstructure:"raw_fallback_timeout" yaml:"raw_fallback_timeout"`
	MaxRedirects       int           `mapstructure:"max_redirects" yaml:"max_redirects"`
	MaxBodyBytes       int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
	UserAgent          string        `mapstructure:"user_agent" yaml:"user_agent"`
}

// LLMConfig contains LLM provider settings
type LLMConfig struct {
	Provider    string        `mapstructure:"provider" yaml:"provider"`
	APIKey      string        `mapstructure:"api_key" yaml:"api_key"`
	BaseURL     string        `mapstructure:"base_url" yaml:"base_url"`
	Model       string        `mapstructure:"model" yaml:"model"`
	MaxTokens   int           `mapstructure:"max_tokens" yaml:"max_tokens"`
	Temperature float64       `mapstructure:"temperature" yaml:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and normalizes out-of-range values
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		c.Server.Port = DefaultPort
	}
	if c.Catalog.Directory == "" {
		c.Catalog.Directory = DefaultCatalogDir
	}
	if c.Catalog.GenerateScript == "" {
		c.Catalog.GenerateScript = DefaultGenerateScript
	}
	if c.Catalog.ScriptTimeout < time.Second {
		c.Catalog.ScriptTimeout = DefaultScriptTimeout
	}
	if c.Fetch.Timeout < time.Second {
		c.Fetch.Timeout = DefaultFetchTimeout
	}
	if c.Fetch.RawFallbackTimeout < time.Second {
		c.Fetch.RawFallbackTimeout = DefaultRawFallbackTimeout
	}
	if c.Fetch.MaxRedirects < 0 {
		c.Fetch.MaxRedirects = DefaultMaxRedirects
	}
	if c.Fetch.MaxBodyBytes < 1 {
		c.Fetch.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.LLM.Timeout < time.Second {
		c.LLM.Timeout = DefaultLLMTimeout
	}
	return nil
}

// Addr returns the host:port listen address
func (c *ServerConfig) Addr() string {
	return formatAddr(c.Host, c.Port)
}
