package usecase

import (
	"context"
	"fmt"
	"strings"

	"docsum/internal/adapter/chunker"
	"docsum/internal/adapter/model"
	"docsum/internal/domain"
	"docsum/internal/logger"
	"docsum/internal/port"
)

// SummarizerUnavailable replaces the summary when the backend could not be
// initialized.
const SummarizerUnavailable = "Summarisation model not available."

// ProgressFunc is called after each chunk with the number of chunks done.
type ProgressFunc func(done, total int)

// SummarizeUseCase summarizes a document window by window.
type SummarizeUseCase struct {
	summarizer  *model.Handle[port.Summarizer]
	tokenizer   *model.Handle[port.Tokenizer]
	chunkTokens int
	opts        port.SummarizeOptions
	log         logger.Logger
	progress    ProgressFunc
	reported    bool
}

// NewSummarizeUseCase creates a new summarize use case.
func NewSummarizeUseCase(
	summarizer *model.Handle[port.Summarizer],
	tokenizer *model.Handle[port.Tokenizer],
	chunkTokens int,
	opts port.SummarizeOptions,
	log logger.Logger,
) *SummarizeUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SummarizeUseCase{
		summarizer:  summarizer,
		tokenizer:   tokenizer,
		chunkTokens: chunkTokens,
		opts:        opts,
		log:         log,
	}
}

// OnProgress registers fn to be called as chunks complete.
func (u *SummarizeUseCase) OnProgress(fn ProgressFunc) {
	u.progress = fn
}

// Summarize splits text into token windows and summarizes each in order.
// A window whose summarization fails is left out of the result. When the
// backend is unavailable the sentinel text is returned once, without
// tokenizing.
func (u *SummarizeUseCase) Summarize(ctx context.Context, text string) domain.Summary {
	if text == "" {
		return domain.Summary{}
	}

	summarizer, tokenizer, err := u.load()
	if err != nil {
		return domain.Summary{Text: SummarizerUnavailable, Unavailable: true}
	}

	chk := chunker.NewTokenChunker(u.chunkTokens, tokenizer)
	chunks, err := chk.Chunk(text)
	if err != nil {
		u.log.Error("failed to tokenize document", "tokenizer", tokenizer.Name(), "err", err)
		return domain.Summary{Text: SummarizerUnavailable, Unavailable: true}
	}

	u.log.Debug("chunked document", "chunks", len(chunks), "window", chk.Size(), "tokenizer", tokenizer.Name())

	summary := domain.Summary{Chunks: len(chunks)}
	for _, c := range chunks {
		if err := ctx.Err(); err != nil {
			u.log.Warn("summarisation cancelled", "remaining", len(chunks)-c.Index)
			for i := c.Index; i < len(chunks); i++ {
				summary.Failed = append(summary.Failed, i)
			}
			break
		}

		part, err := summarizer.Summarize(ctx, c.Text, u.opts)
		if err != nil {
			u.log.Warn(fmt.Sprintf("An error occurred during summarisation of a chunk: %v", err), "chunk", c.Index)
			summary.Failed = append(summary.Failed, c.Index)
		} else {
			summary.Parts = append(summary.Parts, part)
			u.log.Debug("summarised chunk", "chunk", c.Index, "tokens", c.End-c.Start)
		}

		if u.progress != nil {
			u.progress(c.Index+1, len(chunks))
		}
	}

	summary.Text = strings.Join(summary.Parts, " ")
	return summary
}

// load resolves both handles. The first failure is logged once; later calls
// see the same recorded error.
func (u *SummarizeUseCase) load() (port.Summarizer, port.Tokenizer, error) {
	summarizer, err := u.summarizer.Get()
	if err == nil {
		var tokenizer port.Tokenizer
		tokenizer, err = u.tokenizer.Get()
		if err == nil {
			return summarizer, tokenizer, nil
		}
	}

	if !u.reported {
		u.reported = true
		u.log.Error(fmt.Sprintf("Error initialising summarisation pipeline: %v", err), "model", u.summarizer.Name())
		if hint := port.HintFor(err); hint != "" {
			u.log.Error(hint)
		}
	}
	return nil, nil, err
}
