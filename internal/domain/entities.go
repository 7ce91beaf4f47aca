package domain

// Document is the concatenated text of every input file that could be read.
type Document struct {
	Text    string
	Sources []string
}

// Empty reports whether there is nothing to process.
func (d Document) Empty() bool {
	return d.Text == ""
}

// ReadFailure records an input path that was skipped.
type ReadFailure struct {
	Path     string
	Err      error
	NotFound bool
}

// Chunk is a window of tokens summarized as one unit.
// Start and End are token offsets into the document's token sequence.
type Chunk struct {
	Index  int
	Start  int
	End    int
	Tokens []int
	Text   string
}

type Summary struct {
	Text        string
	Parts       []string
	Failed      []int // indexes of chunks whose summarization failed
	Chunks      int
	Unavailable bool
}

type Entity struct {
	Label string
	Text  string
}

type EntityGroup struct {
	Label string
	Items []string
}

// EntitySet is the grouped recognizer output. Unavailable is distinct from
// an empty set: it means the recognizer could not be used at all.
type EntitySet struct {
	Groups      []EntityGroup
	Unavailable bool
	Hint        string
}

// Empty reports whether there is nothing to show, either because the
// recognizer found nothing or because it was unavailable.
func (s EntitySet) Empty() bool {
	return len(s.Groups) == 0
}

// Result is everything produced by one run.
type Result struct {
	Document Document
	Summary  Summary
	Entities EntitySet
	Failures []ReadFailure

	// OutputPath is where the result file was written, or would have been
	// when SaveErr is set.
	OutputPath string
	SaveErr    error
}
