package usecase

import (
	"fmt"
	"strings"

	"docsum/internal/adapter/fs"
	"docsum/internal/domain"
	"docsum/internal/logger"
	"docsum/internal/port"
)

// ReadUseCase gathers the text of every input file into one document.
type ReadUseCase struct {
	reader   port.FileReader
	expander port.PathExpander
	log      logger.Logger
}

// NewReadUseCase creates a new read use case. expander may be nil, in which
// case paths are read exactly as given.
func NewReadUseCase(reader port.FileReader, expander port.PathExpander, log logger.Logger) *ReadUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReadUseCase{
		reader:   reader,
		expander: expander,
		log:      log,
	}
}

// Read concatenates the files in order, each followed by a newline, and
// trims the result. Files that cannot be read are skipped and reported.
func (u *ReadUseCase) Read(paths []string) (domain.Document, []domain.ReadFailure) {
	if u.expander != nil {
		paths = u.expander.Expand(paths)
	}

	var b strings.Builder
	var doc domain.Document
	var failures []domain.ReadFailure

	for _, path := range paths {
		text, err := u.reader.ReadFile(path)
		if err != nil {
			notFound := fs.IsNotFound(err)
			if notFound {
				u.log.Warn(fmt.Sprintf("Error: File not found at %s", path))
			} else {
				u.log.Warn(fmt.Sprintf("An error occurred while reading %s: %v", path, err))
			}
			failures = append(failures, domain.ReadFailure{Path: path, Err: err, NotFound: notFound})
			continue
		}

		b.WriteString(text)
		b.WriteString("\n")
		doc.Sources = append(doc.Sources, path)
		u.log.Debug("read input", "path", path, "bytes", len(text))
	}

	doc.Text = strings.TrimSpace(b.String())
	return doc, failures
}
