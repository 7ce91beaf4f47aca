package port

// FileReader loads one input file as text.
type FileReader interface {
	ReadFile(path string) (string, error)
}

// PathExpander turns command-line arguments into concrete file paths.
type PathExpander interface {
	Expand(args []string) []string
}
