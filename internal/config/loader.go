package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// CredentialEnvVar is the primary environment variable holding the AI
// provider credential. Provider-conventional variables are probed as
// fallbacks so existing shells keep working.
const CredentialEnvVar = "CATALOGD_LLM_API_KEY"

// Load loads configuration from file, environment, and defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (CATALOGD_*)
	v.SetEnvPrefix("CATALOGD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Provider-conventional credential fallbacks. The credential is
	// optional: the scrape-only path works without it.
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = credentialFromEnv(cfg.LLM.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)

	v.SetDefault("catalog.directory", DefaultCatalogDir)
	v.SetDefault("catalog.generate_script", DefaultGenerateScript)
	v.SetDefault("catalog.script_timeout", DefaultScriptTimeout)

	v.SetDefault("fetch.timeout", DefaultFetchTimeout)
	v.SetDefault("fetch.raw_fallback_timeout", DefaultRawFallbackTimeout)
	v.SetDefault("fetch.max_redirects", DefaultMaxRedirects)
	v.SetDefault("fetch.max_body_bytes", DefaultMaxBodyBytes)
	v.SetDefault("fetch.user_agent", "")

	v.SetDefault("llm.provider", DefaultLLMProvider)
	v.SetDefault("llm.base_url", DefaultLLMBaseURL)
	v.SetDefault("llm.model", DefaultLLMModel)
	v.SetDefault("llm.timeout", DefaultLLMTimeout)
	v.SetDefault("llm.max_tokens", 0)
	v.SetDefault("llm.temperature", 0.0)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

func credentialFromEnv(provider string) string {
	switch provider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	}
	return ""
}
