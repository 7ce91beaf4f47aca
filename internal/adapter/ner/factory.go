package ner

import (
	"fmt"

	"docsum/config"
	"docsum/internal/port"
)

// New creates the recognizer selected by cfg.Provider.
// An empty model selects the provider's default.
func New(cfg config.NERConfig) (port.Recognizer, error) {
	if cfg.Model == "" {
		cfg.Model = config.DefaultNERModel(cfg.Provider)
	}

	switch cfg.Provider {
	case "spacy":
		return checked(NewSpacyRecognizer(cfg.Model, cfg.BaseURL, cfg.Timeout))
	case "huggingface":
		return checked(NewHuggingFaceRecognizer(cfg.APIKeyEnv, cfg.Model, cfg.BaseURL, cfg.Timeout))
	case "hugot":
		return checked(NewHugotRecognizer(cfg.ModelPath, cfg.Model))
	default:
		return nil, fmt.Errorf("unsupported NER provider: %s", cfg.Provider)
	}
}

// checked keeps a failed constructor from returning a non-nil interface
// holding a nil pointer.
func checked[T port.Recognizer](v T, err error) (port.Recognizer, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
