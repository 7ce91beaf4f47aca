package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotText means a file's bytes are not valid in the configured charset.
var ErrNotText = errors.New("file is not valid text")

// Reader loads input files as text. PDF files are reduced to their text
// layer and Markdown can optionally be reduced to plain text.
type Reader struct {
	fs            afero.Fs
	encoding      string
	stripMarkdown bool
}

// NewReader creates a Reader over fsys. An empty encoding means strict UTF-8.
func NewReader(fsys afero.Fs, encoding string, stripMarkdown bool) *Reader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Reader{
		fs:            fsys,
		encoding:      encoding,
		stripMarkdown: stripMarkdown,
	}
}

// ReadFile returns the text content of path.
func (r *Reader) ReadFile(path string) (string, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: is a directory", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pdfText(f, info.Size())
	case ".md", ".markdown":
		data, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		text, err := decodeText(data, r.encoding)
		if err != nil || !r.stripMarkdown {
			return text, err
		}
		return markdownText([]byte(text)), nil
	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return decodeText(data, r.encoding)
	}
}

// IsNotFound reports whether err means the path does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
