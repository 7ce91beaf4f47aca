package chunker

import (
	"fmt"

	"docsum/internal/domain"
	"docsum/internal/port"
)

// DefaultChunkTokens matches the 1024-token input window of BART.
const DefaultChunkTokens = 1024

// TokenChunker splits a token sequence into consecutive, non-overlapping
// windows of at most maxTokens tokens. Windows ignore sentence boundaries.
type TokenChunker struct {
	maxTokens int
	tokenizer port.Tokenizer
}

func NewTokenChunker(maxTokens int, tokenizer port.Tokenizer) *TokenChunker {
	if maxTokens <= 0 {
		maxTokens = DefaultChunkTokens
	}
	return &TokenChunker{
		maxTokens: maxTokens,
		tokenizer: tokenizer,
	}
}

// Size returns the window size in tokens.
func (c *TokenChunker) Size() int {
	return c.maxTokens
}

// Split partitions tokens into ceil(len(tokens)/size) windows. The windows
// share the backing array of tokens.
func (c *TokenChunker) Split(tokens []int) []domain.Chunk {
	if len(tokens) == 0 {
		return nil
	}

	chunks := make([]domain.Chunk, 0, (len(tokens)+c.maxTokens-1)/c.maxTokens)
	for start := 0; start < len(tokens); start += c.maxTokens {
		end := start + c.maxTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, domain.Chunk{
			Index:  len(chunks),
			Start:  start,
			End:    end,
			Tokens: tokens[start:end],
		})
	}
	return chunks
}

// Chunk encodes text, splits it and decodes every window back to text.
func (c *TokenChunker) Chunk(text string) ([]domain.Chunk, error) {
	tokens, err := c.tokenizer.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize text: %w", err)
	}

	chunks := c.Split(tokens)
	for i := range chunks {
		decoded, err := c.tokenizer.Decode(chunks[i].Tokens)
		if err != nil {
			return nil, fmt.Errorf("failed to decode chunk %d: %w", i, err)
		}
		chunks[i].Text = decoded
	}
	return chunks, nil
}
