package ner

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"docsum/internal/domain"
	"docsum/internal/port"
)

// DefaultSpacyURL is where a local spaCy REST service listens by default.
const DefaultSpacyURL = "http://localhost:8080"

// SpacyRecognizer calls a spaCy REST service exposing the displaCy
// "/ent" endpoint, which runs a named pipeline such as en_core_web_sm.
type SpacyRecognizer struct {
	baseURL string
	model   string
	client  *resty.Client
}

type spacyRequest struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

type spacySpan struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  string `json:"type"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

type spacyError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewSpacyRecognizer(model, baseURL string, timeout time.Duration) (*SpacyRecognizer, error) {
	if baseURL == "" {
		baseURL = DefaultSpacyURL
	}
	if model == "" {
		model = "en_core_web_sm"
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &SpacyRecognizer{
		baseURL: baseURL,
		model:   model,
		client:  client,
	}, nil
}

func (r *SpacyRecognizer) Recognize(ctx context.Context, text string) ([]domain.Entity, error) {
	var spans []spacySpan
	var apiErr spacyError

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(spacyRequest{Text: text, Model: r.model}).
		SetResult(&spans).
		SetError(&apiErr).
		Post("/ent")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, port.Unavailable(r.model, r.hint(), fmt.Errorf("request failed: %w", err))
	}

	if resp.IsError() {
		msg := apiErr.Error
		if msg == "" {
			msg = apiErr.Message
		}
		if msg == "" {
			msg = preview(resp.String())
		}
		if resp.StatusCode() == http.StatusNotFound || (resp.StatusCode() < 500 && missingModel(msg)) {
			return nil, port.Unavailable(r.model, r.hint(), fmt.Errorf("service returned status %d: %s", resp.StatusCode(), msg))
		}
		return nil, fmt.Errorf("service returned status %d: %s", resp.StatusCode(), msg)
	}

	runes := []rune(text)
	entities := make([]domain.Entity, 0, len(spans))
	for _, s := range spans {
		label := s.Type
		if label == "" {
			label = s.Label
		}
		surface := s.Text
		if surface == "" {
			surface = sliceRunes(runes, s.Start, s.End)
		}
		entities = append(entities, domain.Entity{Label: label, Text: surface})
	}
	return entities, nil
}

// missingModelPhrases are the ways spaCy and its REST wrappers report a
// pipeline that is not installed, e.g. "[E050] Can't find model 'x'".
var missingModelPhrases = []string{
	"can't find model",
	"cannot find model",
	"unknown model",
	"model not found",
	"no such model",
	"[e050]",
}

func missingModel(msg string) bool {
	msg = strings.ToLower(msg)
	for _, phrase := range missingModelPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

func (r *SpacyRecognizer) ModelName() string {
	return r.model
}

func (r *SpacyRecognizer) hint() string {
	return fmt.Sprintf("Please run: python -m spacy download %s (and make sure the spaCy service at %s is running)", r.model, r.baseURL)
}
