package port

import "context"

// SummarizeOptions bounds the generated summary length in model tokens.
type SummarizeOptions struct {
	MaxTokens     int
	MinTokens     int
	Deterministic bool // greedy decoding, no sampling
}

// Summarizer produces an abstractive summary of a piece of text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts SummarizeOptions) (string, error)

	// ModelName returns the name of the summarization model.
	ModelName() string
}
