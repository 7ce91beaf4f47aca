package usecase

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsum/internal/adapter/model"
	"docsum/internal/adapter/report"
	"docsum/internal/domain"
	"docsum/internal/port"
)

const appleText = "Apple Inc. was founded by Steve Jobs in Cupertino."

var appleEntities = []domain.Entity{
	{Label: "ORG", Text: "Apple Inc."},
	{Label: "PERSON", Text: "Steve Jobs"},
	{Label: "GPE", Text: "Cupertino"},
}

type pipelineFixture struct {
	mem        afero.Fs
	summarizer *fakeSummarizer
	recognizer *fakeRecognizer
	presenter  *fakePresenter
	pipeline   *PipelineUseCase
}

func newPipelineFixture(t *testing.T, files map[string]string, writerFs afero.Fs) *pipelineFixture {
	t.Helper()
	f := &pipelineFixture{
		mem:        memDocs(t, files),
		summarizer: &fakeSummarizer{},
		recognizer: &fakeRecognizer{entities: appleEntities},
		presenter:  &fakePresenter{},
	}
	if writerFs == nil {
		writerFs = f.mem
	}

	summarize := NewSummarizeUseCase(model.Ready[port.Summarizer]("fake", f.summarizer), readyTokenizer(), 1024, defaultOpts, nil)
	extract := NewExtractUseCase(model.Ready[port.Recognizer]("en_core_web_sm", f.recognizer), nil)
	f.pipeline = NewPipelineUseCase(newReadUC(f.mem), summarize, extract, f.presenter, report.NewFileWriter(writerFs), "_summarised", nil)
	return f
}

func TestPipelineNoContent(t *testing.T) {
	f := newPipelineFixture(t, nil, nil)

	result := f.pipeline.Run(context.Background(), []string{"/docs/missing.txt", "/docs/gone.txt"})

	assert.Equal(t, []string{"no-content"}, f.presenter.events)
	assert.Empty(t, f.summarizer.calls)
	assert.Zero(t, f.recognizer.calls)
	assert.Len(t, result.Failures, 2)
	assert.Empty(t, result.OutputPath)
}

func TestPipelineEndToEnd(t *testing.T) {
	f := newPipelineFixture(t, map[string]string{"/docs/doc.txt": appleText}, nil)

	result := f.pipeline.Run(context.Background(), []string{"/docs/doc.txt"})

	assert.Equal(t, []string{"original", "summary", "entities", "saved /docs/doc_summarised.txt"}, f.presenter.events)
	assert.Equal(t, "/docs/doc_summarised.txt", result.OutputPath)
	require.NoError(t, result.SaveErr)
	assert.Equal(t, 1, f.recognizer.calls)

	assert.Equal(t, []domain.EntityGroup{
		{Label: "ORG", Items: []string{"Apple Inc."}},
		{Label: "PERSON", Items: []string{"Steve Jobs"}},
		{Label: "GPE", Items: []string{"Cupertino"}},
	}, result.Entities.Groups)

	data, err := afero.ReadFile(f.mem, "/docs/doc_summarised.txt")
	require.NoError(t, err)
	assert.Equal(t, report.Format("S("+appleText+")", result.Entities), string(data))
}

func TestPipelineOutputNamedAfterFirstArgument(t *testing.T) {
	f := newPipelineFixture(t, map[string]string{"/docs/b.txt": appleText}, nil)

	result := f.pipeline.Run(context.Background(), []string{"/other/a.md", "/docs/b.txt"})

	assert.Equal(t, "/other/a_summarised.txt", result.OutputPath)
	assert.Len(t, result.Failures, 1)
}

func TestPipelineIdempotent(t *testing.T) {
	f := newPipelineFixture(t, map[string]string{"/docs/doc.txt": appleText}, nil)

	f.pipeline.Run(context.Background(), []string{"/docs/doc.txt"})
	first, err := afero.ReadFile(f.mem, "/docs/doc_summarised.txt")
	require.NoError(t, err)

	f.pipeline.Run(context.Background(), []string{"/docs/doc.txt"})
	second, err := afero.ReadFile(f.mem, "/docs/doc_summarised.txt")
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestPipelineSaveFailureIsReported(t *testing.T) {
	files := map[string]string{"/docs/doc.txt": appleText}
	f := newPipelineFixture(t, files, afero.NewReadOnlyFs(afero.NewMemMapFs()))

	result := f.pipeline.Run(context.Background(), []string{"/docs/doc.txt"})

	assert.Error(t, result.SaveErr)
	assert.Equal(t, []string{"original", "summary", "entities", "save-failed"}, f.presenter.events)
	assert.Equal(t, "S("+appleText+")", result.Summary.Text)
}
