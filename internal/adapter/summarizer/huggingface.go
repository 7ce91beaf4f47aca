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

const huggingFaceBaseURL = "https://api-inference.huggingface.co"

// HuggingFaceSummarizer calls the summarization task of the Hugging Face
// Inference API, e.g. facebook/bart-large-cnn.
type HuggingFaceSummarizer struct {
	model  string
	client *resty.Client
}

type hfSummarizeRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters hfSummarizeParams  `json:"parameters"`
	Options    hfInferenceOptions `json:"options"`
}

type hfSummarizeParams struct {
	MaxLength int  `json:"max_length,omitempty"`
	MinLength int  `json:"min_length,omitempty"`
	DoSample  bool `json:"do_sample"`
}

type hfInferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

type hfError struct {
	Error string `json:"error"`
}

// NewHuggingFaceSummarizer creates a client for model. The API token is read
// from apiKeyEnv and may be empty for local inference servers.
func NewHuggingFaceSummarizer(apiKeyEnv, model, baseURL string, timeout time.Duration) (*HuggingFaceSummarizer, error) {
	if model == "" {
		return nil, fmt.Errorf("summarization model name is required")
	}
	if baseURL == "" {
		baseURL = huggingFaceBaseURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	if apiKeyEnv == "" {
		apiKeyEnv = "HF_TOKEN"
	}
	if token := os.Getenv(apiKeyEnv); token != "" {
		client.SetAuthToken(token)
	}

	return &HuggingFaceSummarizer{
		model:  model,
		client: client,
	}, nil
}

func (s *HuggingFaceSummarizer) Summarize(ctx context.Context, text string, opts port.SummarizeOptions) (string, error) {
	var out []hfSummary
	var apiErr hfError

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(hfSummarizeRequest{
			Inputs: text,
			Parameters: hfSummarizeParams{
				MaxLength: opts.MaxTokens,
				MinLength: opts.MinTokens,
				DoSample:  !opts.Deterministic,
			},
			Options: hfInferenceOptions{WaitForModel: true},
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/models/" + s.model)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}

	if resp.IsError() {
		if apiErr.Error != "" {
			return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode(), apiErr.Error)
		}
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode(), preview(resp.String()))
	}

	if len(out) == 0 || strings.TrimSpace(out[0].SummaryText) == "" {
		return "", port.ErrEmptyResponse
	}
	return strings.TrimSpace(out[0].SummaryText), nil
}

func (s *HuggingFaceSummarizer) ModelName() string {
	return s.model
}

func preview(body string) string {
	if len(body) > 200 {
		return body[:200]
	}
	return body
}
