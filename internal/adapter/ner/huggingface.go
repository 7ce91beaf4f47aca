package ner

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"docsum/internal/domain"
	"docsum/internal/port"
)

const huggingFaceBaseURL = "https://api-inference.huggingface.co"

// HuggingFaceRecognizer calls the token-classification task of the Hugging
// Face Inference API with simple aggregation, e.g. dslim/bert-base-NER.
type HuggingFaceRecognizer struct {
	model  string
	client *resty.Client
}

type hfNERRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfNERParams  `json:"parameters"`
	Options    hfNEROptions `json:"options"`
}

type hfNERParams struct {
	AggregationStrategy string `json:"aggregation_strategy"`
}

type hfNEROptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfEntity struct {
	EntityGroup string  `json:"entity_group"`
	Entity      string  `json:"entity"`
	Word        string  `json:"word"`
	Score       float64 `json:"score"`
	Start       *int    `json:"start"`
	End         *int    `json:"end"`
}

type hfError struct {
	Error string `json:"error"`
}

func NewHuggingFaceRecognizer(apiKeyEnv, model, baseURL string, timeout time.Duration) (*HuggingFaceRecognizer, error) {
	if model == "" {
		return nil, fmt.Errorf("NER model name is required")
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

	return &HuggingFaceRecognizer{
		model:  model,
		client: client,
	}, nil
}

func (r *HuggingFaceRecognizer) Recognize(ctx context.Context, text string) ([]domain.Entity, error) {
	var out []hfEntity
	var apiErr hfError

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(hfNERRequest{
			Inputs:     text,
			Parameters: hfNERParams{AggregationStrategy: "simple"},
			Options:    hfNEROptions{WaitForModel: true},
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/models/" + r.model)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, port.Unavailable(r.model, r.hint(), fmt.Errorf("request failed: %w", err))
	}

	if resp.IsError() {
		msg := apiErr.Error
		if msg == "" {
			msg = preview(resp.String())
		}
		if resp.StatusCode() == http.StatusNotFound {
			return nil, port.Unavailable(r.model, r.hint(), fmt.Errorf("API returned status %d: %s", resp.StatusCode(), msg))
		}
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode(), msg)
	}

	runes := []rune(text)
	entities := make([]domain.Entity, 0, len(out))
	for _, e := range out {
		label := e.EntityGroup
		if label == "" {
			label = strings.TrimPrefix(strings.TrimPrefix(e.Entity, "B-"), "I-")
		}
		surface := e.Word
		if e.Start != nil && e.End != nil {
			if s := sliceRunes(runes, *e.Start, *e.End); s != "" {
				surface = s
			}
		}
		entities = append(entities, domain.Entity{Label: label, Text: surface})
	}
	return entities, nil
}

func (r *HuggingFaceRecognizer) ModelName() string {
	return r.model
}

func (r *HuggingFaceRecognizer) hint() string {
	return fmt.Sprintf("Check that %s exists on the Hugging Face Hub and that HF_TOKEN is set", r.model)
}
