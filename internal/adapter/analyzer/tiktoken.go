package analyzer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"docsum/internal/port"
)

// DefaultEncoding is the GPT-2 byte-pair encoding, shared with BART.
const DefaultEncoding = "r50k_base"

// TiktokenTokenizer implements byte-pair encoding using the tiktoken-go library.
type TiktokenTokenizer struct {
	encodingName string
	tke          *tiktoken.Tiktoken
}

// NewTiktokenTokenizer loads the given encoding, or a model name's encoding.
// The BPE ranks are fetched and cached on first use, so this can fail when
// offline.
func NewTiktokenTokenizer(encodingOrModel string) (*TiktokenTokenizer, error) {
	if encodingOrModel == "" {
		encodingOrModel = DefaultEncoding
	}

	tke, err := tiktoken.GetEncoding(encodingOrModel)
	if err != nil {
		// Try as a model name
		var modelErr error
		tke, modelErr = tiktoken.EncodingForModel(encodingOrModel)
		if modelErr != nil {
			return nil, fmt.Errorf("failed to load tiktoken encoding '%s': %w", encodingOrModel, err)
		}
	}

	return &TiktokenTokenizer{
		encodingName: encodingOrModel,
		tke:          tke,
	}, nil
}

// Encode encodes text into token IDs. Special-token text is encoded as
// ordinary text.
func (t *TiktokenTokenizer) Encode(text string) ([]int, error) {
	if t.tke == nil {
		return nil, fmt.Errorf("tiktoken encoder is not initialized for encoding %s", t.encodingName)
	}
	if text == "" {
		return nil, nil
	}
	return t.tke.Encode(text, nil, nil), nil
}

// Decode decodes token IDs back into text.
func (t *TiktokenTokenizer) Decode(tokens []int) (string, error) {
	if t.tke == nil {
		return "", fmt.Errorf("tiktoken encoder is not initialized for encoding %s", t.encodingName)
	}
	return t.tke.Decode(tokens), nil
}

func (t *TiktokenTokenizer) Name() string {
	return "tiktoken:" + t.encodingName
}

// NewTokenizer returns the tokenizer selected by kind: "word" for the
// offline word tokenizer, anything else for tiktoken with encoding.
func NewTokenizer(kind, encoding string) (port.Tokenizer, error) {
	if kind == "word" {
		return NewWordTokenizer(), nil
	}
	tok, err := NewTiktokenTokenizer(encoding)
	if err != nil {
		return nil, err
	}
	return tok, nil
}
