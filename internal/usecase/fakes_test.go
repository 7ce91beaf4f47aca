package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"docsum/internal/domain"
	"docsum/internal/logger"
	"docsum/internal/port"
)

type fakeSummarizer struct {
	calls  []string
	failOn string
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string, opts port.SummarizeOptions) (string, error) {
	f.calls = append(f.calls, text)
	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return "", errors.New("backend rejected chunk")
	}
	return "S(" + text + ")", nil
}

func (f *fakeSummarizer) ModelName() string { return "fake-bart" }

type fakeRecognizer struct {
	calls    int
	entities []domain.Entity
	err      error
}

func (f *fakeRecognizer) Recognize(context.Context, string) ([]domain.Entity, error) {
	f.calls++
	return f.entities, f.err
}

func (f *fakeRecognizer) ModelName() string { return "en_core_web_sm" }

type fakePresenter struct {
	events []string
}

func (p *fakePresenter) NoContent() { p.events = append(p.events, "no-content") }
func (p *fakePresenter) Original(string) { p.events = append(p.events, "original") }
func (p *fakePresenter) Summary(string) { p.events = append(p.events, "summary") }
func (p *fakePresenter) Entities(domain.EntitySet) { p.events = append(p.events, "entities") }
func (p *fakePresenter) Saved(path string) { p.events = append(p.events, "saved "+path) }
func (p *fakePresenter) SaveFailed(error) { p.events = append(p.events, "save-failed") }

func bufferLogger() (logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.NewLogger(&logger.Config{Level: logger.DebugLevel, Output: &buf}), &buf
}
