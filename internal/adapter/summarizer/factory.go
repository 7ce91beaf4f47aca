package summarizer

import (
	"context"
	"fmt"

	"docsum/config"
	"docsum/internal/port"
)

// New creates the summarization backend selected by cfg.Provider.
// An empty model selects the provider's default.
func New(ctx context.Context, cfg config.SummarizerConfig) (port.Summarizer, error) {
	if cfg.Model == "" {
		cfg.Model = config.DefaultSummarizerModel(cfg.Provider)
	}

	switch cfg.Provider {
	case "huggingface":
		return checked(NewHuggingFaceSummarizer(cfg.APIKeyEnv, cfg.Model, cfg.BaseURL, cfg.Timeout))
	case "openai", "deepseek", "ollama", "local":
		return checked(NewChatSummarizer(cfg.Provider, cfg.APIKeyEnv, cfg.Model, cfg.BaseURL, cfg.Timeout))
	case "gemini":
		return checked(NewGeminiSummarizer(ctx, cfg.APIKeyEnv, cfg.Model))
	default:
		return nil, fmt.Errorf("unsupported summarization provider: %s", cfg.Provider)
	}
}

// checked keeps a failed constructor from returning a non-nil interface
// holding a nil pointer.
func checked[T port.Summarizer](v T, err error) (port.Summarizer, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
