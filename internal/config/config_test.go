package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		viper.Reset()
		viper.SetEnvPrefix("DUKKAN")
		viper.AutomaticEnv()
		viper.SetDefault(KeyCatalogPath, DefaultCatalogPath)
		viper.SetDefault(KeyModel, DefaultModel)
		viper.SetDefault(KeyTemperature, DefaultTemperature)
		viper.SetDefault(KeyMaxTokens, DefaultMaxTokens)
		viper.SetDefault(KeyListenAddr, DefaultListenAddr)
		viper.SetDefault(KeyDefaultRole, DefaultRole)
	})
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultCatalogPath, cfg.CatalogPath)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.InDelta(t, DefaultTemperature, cfg.Temperature, 0.0001)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, DefaultRole, cfg.DefaultRole)
	assert.Empty(t, cfg.OpenAIAPIKey)
}

func TestLoadFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("DUKKAN_CATALOG_PATH", "/srv/catalog.json")
	t.Setenv("DUKKAN_OPENAI_API_KEY", "sk-test")
	t.Setenv("DUKKAN_MODEL", "gpt-4o-mini")
	t.Setenv("DUKKAN_MAX_TOKENS", "512")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/catalog.json", cfg.CatalogPath)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 512, cfg.MaxTokens)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{name: "temperature out of range", env: "DUKKAN_TEMPERATURE", value: "3.5"},
		{name: "negative temperature", env: "DUKKAN_TEMPERATURE", value: "-1"},
		{name: "zero max tokens", env: "DUKKAN_MAX_TOKENS", value: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
