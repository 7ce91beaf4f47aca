package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"docsum/internal/port"
)

// GeminiSummarizer summarizes through the Gemini API.
type GeminiSummarizer struct {
	model  string
	client *genai.Client
}

// NewGeminiSummarizer creates a Gemini client using the key in apiKeyEnv.
func NewGeminiSummarizer(ctx context.Context, apiKeyEnv, model string) (*GeminiSummarizer, error) {
	if apiKeyEnv == "" {
		apiKeyEnv = "GEMINI_API_KEY"
	}
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("API key not found in environment variable: %s", apiKeyEnv)
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &GeminiSummarizer{
		model:  model,
		client: client,
	}, nil
}

func (s *GeminiSummarizer) Summarize(ctx context.Context, text string, opts port.SummarizeOptions) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		MaxOutputTokens:   int32(opts.MaxTokens),
	}
	if opts.Deterministic {
		cfg.Temperature = genai.Ptr[float32](0)
		cfg.TopK = genai.Ptr[float32](1)
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(buildPrompt(text, opts)), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", port.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		return "", port.ErrEmptyResponse
	}
	return summary, nil
}

func (s *GeminiSummarizer) ModelName() string {
	return s.model
}
