package analyzer

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// WordTokenizer is an offline tokenizer that maps whitespace-separated
// words to IDs from a vocabulary grown on the fly. Decoding joins words
// with single spaces, so runs of whitespace and line breaks are not
// preserved.
type WordTokenizer struct {
	mu    sync.RWMutex
	ids   map[string]int
	words []string
}

// NewWordTokenizer creates an empty WordTokenizer.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{ids: make(map[string]int)}
}

// Encode splits text into words and returns their vocabulary IDs.
func (t *WordTokenizer) Encode(text string) ([]int, error) {
	words := splitWords(text)
	if len(words) == 0 {
		return nil, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	tokens := make([]int, len(words))
	for i, word := range words {
		id, ok := t.ids[word]
		if !ok {
			id = len(t.words)
			t.ids[word] = id
			t.words = append(t.words, word)
		}
		tokens[i] = id
	}
	return tokens, nil
}

// Decode maps IDs back to words joined by single spaces.
func (t *WordTokenizer) Decode(tokens []int) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var sb strings.Builder
	for i, id := range tokens {
		if id < 0 || id >= len(t.words) {
			return "", fmt.Errorf("unknown token id %d", id)
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.words[id])
	}
	return sb.String(), nil
}

func (t *WordTokenizer) Name() string {
	return "word"
}

// VocabSize returns the number of distinct words seen so far.
func (t *WordTokenizer) VocabSize() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.words)
}

// splitWords splits text on unicode whitespace, keeping punctuation attached.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsSpace(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}
