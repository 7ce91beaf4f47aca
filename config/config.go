package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. DOCSUM_SUMMARIZER_PROVIDER.
const EnvPrefix = "DOCSUM_"

// Config holds all configuration for docsum.
type Config struct {
	Input      InputConfig      `yaml:"input" envPrefix:"INPUT_"`
	Summarizer SummarizerConfig `yaml:"summarizer" envPrefix:"SUMMARIZER_"`
	NER        NERConfig        `yaml:"ner" envPrefix:"NER_"`
	Output     OutputConfig     `yaml:"output" envPrefix:"OUTPUT_"`
	Logging    LoggingConfig    `yaml:"logging" envPrefix:"LOG_"`
}

// InputConfig controls how input files are decoded.
type InputConfig struct {
	Encoding      string `yaml:"encoding" env:"ENCODING" validate:"required"` // IANA charset name, "utf-8" is strict
	StripMarkdown bool   `yaml:"strip_markdown" env:"STRIP_MARKDOWN"`
}

// SummarizerConfig holds summarization backend configuration.
type SummarizerConfig struct {
	Provider    string        `yaml:"provider" env:"PROVIDER" validate:"oneof=huggingface openai deepseek ollama local gemini"`
	Model       string        `yaml:"model" env:"MODEL" validate:"required"` // empty picks the provider default
	BaseURL     string        `yaml:"base_url" env:"BASE_URL" validate:"omitempty,url"`
	APIKeyEnv   string        `yaml:"api_key_env" env:"API_KEY_ENV"` // empty uses the provider default, e.g. HF_TOKEN
	Tokenizer   string        `yaml:"tokenizer" env:"TOKENIZER" validate:"oneof=tiktoken word"`
	Encoding    string        `yaml:"encoding" env:"ENCODING"` // tiktoken encoding name
	ChunkTokens int           `yaml:"chunk_tokens" env:"CHUNK_TOKENS" validate:"min=1"`
	MaxTokens   int           `yaml:"max_tokens" env:"MAX_TOKENS" validate:"min=1"`
	MinTokens   int           `yaml:"min_tokens" env:"MIN_TOKENS" validate:"min=0,ltefield=MaxTokens"`
	Timeout     time.Duration `yaml:"timeout" env:"TIMEOUT"` // 0 waits forever
}

// NERConfig holds entity recognition backend configuration.
type NERConfig struct {
	Provider  string        `yaml:"provider" env:"PROVIDER" validate:"oneof=spacy huggingface hugot"`
	Model     string        `yaml:"model" env:"MODEL" validate:"required"`
	BaseURL   string        `yaml:"base_url" env:"BASE_URL" validate:"omitempty,url"` // empty uses the provider default
	APIKeyEnv string        `yaml:"api_key_env" env:"API_KEY_ENV"`
	ModelPath string        `yaml:"model_path" env:"MODEL_PATH"` // exported ONNX model dir for hugot
	Timeout   time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// OutputConfig controls console rendering and the result file name.
type OutputConfig struct {
	WrapWidth int    `yaml:"wrap_width" env:"WRAP_WIDTH" validate:"min=1"`
	Suffix    string `yaml:"suffix" env:"SUFFIX" validate:"required"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json" env:"JSON"`
}

// summarizerModels and nerModels hold the model used when a provider is
// selected without naming one. The local provider has no sensible default.
var (
	summarizerModels = map[string]string{
		"huggingface": "facebook/bart-large-cnn",
		"openai":      "gpt-4o-mini",
		"deepseek":    "deepseek-chat",
		"ollama":      "llama3.2",
		"gemini":      "gemini-2.5-flash",
	}
	nerModels = map[string]string{
		"spacy":       "en_core_web_sm",
		"huggingface": "dslim/bert-base-NER",
		"hugot":       "KnightsAnalytics/distilbert-NER",
	}
)

// DefaultSummarizerModel returns the model used for provider when none is configured.
func DefaultSummarizerModel(provider string) string {
	return summarizerModels[provider]
}

// DefaultNERModel returns the model used for provider when none is configured.
func DefaultNERModel(provider string) string {
	return nerModels[provider]
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	cfg := baseConfig()
	cfg.resolveModels()
	return cfg
}

// baseConfig holds the defaults that do not depend on the chosen provider.
func baseConfig() *Config {
	return &Config{
		Input: InputConfig{
			Encoding:      "utf-8",
			StripMarkdown: false,
		},
		Summarizer: SummarizerConfig{
			Provider:    "huggingface",
			Tokenizer:   "tiktoken",
			Encoding:    "r50k_base", // GPT-2 BPE, the vocabulary BART was trained with
			ChunkTokens: 1024,
			MaxTokens:   150,
			MinTokens:   30,
		},
		NER: NERConfig{
			Provider: "spacy",
		},
		Output: OutputConfig{
			WrapWidth: 80,
			Suffix:    "_summarised",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := baseConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for docsum.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "docsum.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".docsum", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	cfg := baseConfig()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv applies environment overrides, then fills in the model of any
// provider that was selected without one.
func (c *Config) applyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}
	c.resolveModels()
	return nil
}

func (c *Config) resolveModels() {
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = DefaultSummarizerModel(c.Summarizer.Provider)
	}
	if c.NER.Model == "" {
		c.NER.Model = DefaultNERModel(c.NER.Provider)
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.NER.Provider == "hugot" && c.NER.ModelPath == "" {
		return fmt.Errorf("invalid config: ner.model_path is required for the hugot provider")
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// OutputPath derives the result file path from the first input path.
func OutputPath(firstInput, suffix string) string {
	base := filepath.Base(firstInput)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(filepath.Dir(firstInput), stem+suffix+".txt")
}
