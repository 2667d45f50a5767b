// Package config holds operator-level configuration for a dukkan process.
//
// Everything here is set by whoever deploys the chatbot, via env vars with
// the DUKKAN_ prefix (e.g. DUKKAN_CATALOG_PATH) or a dukkan.config.yaml
// file. The end user supplies nothing but messages and a role selection;
// the model credential in particular belongs to the operator.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Viper keys. Each maps to an env var with the DUKKAN_ prefix
// (e.g. "catalog_path" → DUKKAN_CATALOG_PATH) and to a YAML field in
// dukkan.config.yaml.
const (
	KeyCatalogPath   = "catalog_path"
	KeyOpenAIAPIKey  = "openai_api_key"
	KeyOpenAIBaseURL = "openai_base_url"
	KeyModel         = "model"
	KeyTemperature   = "temperature"
	KeyMaxTokens     = "max_tokens"
	KeyListenAddr    = "listen_addr"
	KeyDefaultRole   = "default_role"
)

// Defaults. The model credential intentionally has no default.
const (
	DefaultCatalogPath = "products.json"
	DefaultModel       = "gpt-3.5-turbo"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
	DefaultListenAddr  = ":8080"
	DefaultRole        = "customer"
)

// Config is the resolved operator configuration.
type Config struct {
	CatalogPath   string  // Path to the products JSON document
	OpenAIAPIKey  string  // Opaque bearer credential for the model service
	OpenAIBaseURL string  // Optional alternate endpoint (tests, proxies)
	Model         string  // Chat completion model name
	Temperature   float64 // Sampling temperature passed to the model
	MaxTokens     int     // Completion token cap per call
	ListenAddr    string  // HTTP listen address for dukkan serve
	DefaultRole   string  // Role assumed when a request declares none
}

func init() {
	viper.SetEnvPrefix("DUKKAN")
	viper.AutomaticEnv()
	viper.SetDefault(KeyCatalogPath, DefaultCatalogPath)
	viper.SetDefault(KeyModel, DefaultModel)
	viper.SetDefault(KeyTemperature, DefaultTemperature)
	viper.SetDefault(KeyMaxTokens, DefaultMaxTokens)
	viper.SetDefault(KeyListenAddr, DefaultListenAddr)
	viper.SetDefault(KeyDefaultRole, DefaultRole)
}

// Load reads configuration from Viper (env vars, config file, defaults)
// and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		CatalogPath:   viper.GetString(KeyCatalogPath),
		OpenAIAPIKey:  viper.GetString(KeyOpenAIAPIKey),
		OpenAIBaseURL: viper.GetString(KeyOpenAIBaseURL),
		Model:         viper.GetString(KeyModel),
		Temperature:   viper.GetFloat64(KeyTemperature),
		MaxTokens:     viper.GetInt(KeyMaxTokens),
		ListenAddr:    viper.GetString(KeyListenAddr),
		DefaultRole:   viper.GetString(KeyDefaultRole),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog_path must be set")
	}
	if c.Model == "" {
		return fmt.Errorf("model must be set")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2], got %v", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}
	return nil
}

// WarnIfSuspectCredential logs an operator warning when the credential is
// missing or does not look like an OpenAI key. This is a superficial
// presentation-level check; real validation is the gateway's error path.
func (c *Config) WarnIfSuspectCredential() {
	switch {
	case c.OpenAIAPIKey == "":
		log.Warn().Msg("DUKKAN_OPENAI_API_KEY is not set; model calls will fail")
	case !strings.HasPrefix(c.OpenAIAPIKey, "sk-"):
		log.Warn().Msg("openai_api_key does not start with sk-; the gateway will reject it if invalid")
	}
}
