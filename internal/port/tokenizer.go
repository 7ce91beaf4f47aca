package port

// Tokenizer converts text to model token IDs and back.
type Tokenizer interface {
	Encode(text string) ([]int, error)

	// Decode may not reproduce the original text exactly; whitespace and
	// punctuation can be normalized.
	Decode(tokens []int) (string, error)

	Name() string
}
