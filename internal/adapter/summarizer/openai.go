package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"docsum/internal/port"
)

// providers maps OpenAI-compatible provider names to their default base URL
// and API key variable. An empty key variable means no key is needed.
var providers = map[string]struct {
	baseURL   string
	apiKeyEnv string
}{
	"openai":   {"https://api.openai.com/v1", "OPENAI_API_KEY"},
	"deepseek": {"https://api.deepseek.com/v1", "DEEPSEEK_API_KEY"},
	"ollama":   {"http://localhost:11434/v1", ""},
	"local":    {"http://localhost:8000/v1", ""},
}

const systemPrompt = "You are a news-style abstractive summarizer. Reply with the summary only, as plain prose without headings or lists."

// ChatSummarizer summarizes through an OpenAI-compatible chat completions API.
type ChatSummarizer struct {
	model  string
	client *resty.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
	Seed        *int          `json:"seed,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// NewChatSummarizer creates a summarizer for one of the known providers.
// baseURL and apiKeyEnv override the provider defaults when non-empty.
func NewChatSummarizer(provider, apiKeyEnv, model, baseURL string, timeout time.Duration) (*ChatSummarizer, error) {
	defaults, ok := providers[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported chat provider: %s", provider)
	}
	if model == "" {
		return nil, fmt.Errorf("summarization model name is required")
	}
	if baseURL == "" {
		baseURL = defaults.baseURL
	}
	if apiKeyEnv == "" {
		apiKeyEnv = defaults.apiKeyEnv
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	if defaults.apiKeyEnv != "" {
		apiKey := os.Getenv(apiKeyEnv)
		if apiKey == "" {
			return nil, fmt.Errorf("API key not found in environment variable: %s", apiKeyEnv)
		}
		client.SetAuthToken(apiKey)
	}

	return &ChatSummarizer{
		model:  model,
		client: client,
	}, nil
}

func (s *ChatSummarizer) Summarize(ctx context.Context, text string, opts port.SummarizeOptions) (string, error) {
	req := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(text, opts)},
		},
		MaxTokens: opts.MaxTokens,
	}
	if opts.Deterministic {
		seed := 0
		req.Seed = &seed
	} else {
		req.Temperature = 0.7
	}

	var out chatResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}

	if out.Error != nil {
		return "", fmt.Errorf("API error: %s", out.Error.Message)
	}
	if resp.IsError() {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode(), preview(resp.String()))
	}

	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", port.ErrEmptyResponse
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func (s *ChatSummarizer) ModelName() string {
	return s.model
}

// buildPrompt asks for a summary within the token bounds. Chat models only
// enforce the upper bound, so the lower bound is stated in the prompt.
func buildPrompt(text string, opts port.SummarizeOptions) string {
	var sb strings.Builder
	sb.WriteString("Summarize the following text")
	switch {
	case opts.MinTokens > 0 && opts.MaxTokens > 0:
		fmt.Fprintf(&sb, " in roughly %d to %d tokens", opts.MinTokens, opts.MaxTokens)
	case opts.MaxTokens > 0:
		fmt.Fprintf(&sb, " in at most %d tokens", opts.MaxTokens)
	}
	sb.WriteString(".\n\n")
	sb.WriteString(text)
	return sb.String()
}
