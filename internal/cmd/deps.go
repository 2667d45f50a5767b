package cmd

import (
	"github.com/sahla-io/dukkan/internal/catalog"
	"github.com/sahla-io/dukkan/internal/chat"
	"github.com/sahla-io/dukkan/internal/config"
	"github.com/sahla-io/dukkan/internal/llm"
)

// loadCatalog resolves config and loads the product store. Shared by the
// commands that do not need a model provider (report, doctor).
func loadCatalog() (*config.Config, *catalog.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	store, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// buildRouter assembles the full chat pipeline: config, catalog, provider,
// policy router.
func buildRouter() (*config.Config, *catalog.Store, *chat.Router, error) {
	cfg, store, err := loadCatalog()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg.WarnIfSuspectCredential()

	var provider llm.Provider
	if cfg.OpenAIBaseURL != "" {
		provider = llm.NewOpenAIProviderWithBaseURL(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	} else {
		provider = llm.NewOpenAIProvider(cfg.OpenAIAPIKey)
	}

	router := chat.NewRouter(chat.Config{
		Store:       store,
		Provider:    provider,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})
	return cfg, store, router, nil
}
