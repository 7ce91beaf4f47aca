package analyzer

import (
	"testing"

	"docsum/internal/port"
)

var _ port.Tokenizer = (*WordTokenizer)(nil)
var _ port.Tokenizer = (*TiktokenTokenizer)(nil)

func TestWordTokenizer_RoundTrip(t *testing.T) {
	tok := NewWordTokenizer()

	ids, err := tok.Encode("Apple Inc. was founded by Steve Jobs in Cupertino.")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 9 {
		t.Fatalf("expected 9 tokens, got %d: %v", len(ids), ids)
	}

	text, err := tok.Decode(ids)
	if err != nil {
		t.Fatal(err)
	}
	if text != "Apple Inc. was founded by Steve Jobs in Cupertino." {
		t.Errorf("unexpected round trip: %q", text)
	}
}

func TestWordTokenizer_NormalizesWhitespace(t *testing.T) {
	tok := NewWordTokenizer()

	ids, _ := tok.Encode("  first line\n\nsecond\tline  ")
	text, err := tok.Decode(ids)
	if err != nil {
		t.Fatal(err)
	}
	if text != "first line second line" {
		t.Errorf("expected whitespace normalized, got %q", text)
	}
}

func TestWordTokenizer_SharedVocabulary(t *testing.T) {
	tok := NewWordTokenizer()

	a, _ := tok.Encode("the cat the")
	if a[0] != a[2] {
		t.Errorf("repeated word should reuse id: %v", a)
	}
	b, _ := tok.Encode("cat")
	if b[0] != a[1] {
		t.Errorf("vocabulary should persist across calls: %v vs %v", b, a)
	}
	if tok.VocabSize() != 2 {
		t.Errorf("expected vocab size 2, got %d", tok.VocabSize())
	}
}

func TestWordTokenizer_SliceDecode(t *testing.T) {
	tok := NewWordTokenizer()

	ids, _ := tok.Encode("one two three four")
	text, err := tok.Decode(ids[1:3])
	if err != nil {
		t.Fatal(err)
	}
	if text != "two three" {
		t.Errorf("expected %q, got %q", "two three", text)
	}
}

func TestWordTokenizer_UnknownID(t *testing.T) {
	tok := NewWordTokenizer()

	if _, err := tok.Decode([]int{7}); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestWordTokenizer_EmptyInput(t *testing.T) {
	tok := NewWordTokenizer()

	ids, err := tok.Encode("")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", len(ids))
	}

	ids, _ = tok.Encode(" \n\t ")
	if len(ids) != 0 {
		t.Errorf("expected 0 tokens for blank input, got %d", len(ids))
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"hello world", 2},
		{"hello_world", 1},
		{"hello-world", 1},
		{"func(x, y)", 2},
		{"Steve Jobs.", 2},
		{"line\nbreak", 2},
		{"   ", 0},
	}

	for _, tt := range tests {
		words := splitWords(tt.input)
		if len(words) != tt.expected {
			t.Errorf("splitWords(%q) = %d words, want %d: %v", tt.input, len(words), tt.expected, words)
		}
	}
}

func TestNewTokenizer_Word(t *testing.T) {
	tok, err := NewTokenizer("word", "")
	if err != nil {
		t.Fatal(err)
	}
	if tok.Name() != "word" {
		t.Errorf("expected word tokenizer, got %s", tok.Name())
	}
}
