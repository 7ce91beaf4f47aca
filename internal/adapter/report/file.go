package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"docsum/internal/domain"
)

// FileWriter persists the summary and entities of a run.
type FileWriter struct {
	fs afero.Fs
}

func NewFileWriter(fs afero.Fs) *FileWriter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileWriter{fs: fs}
}

// Format renders the result file contents.
func Format(summary string, set domain.EntitySet) string {
	var b strings.Builder
	b.WriteString("--- Summary ---\n")
	b.WriteString(summary)
	b.WriteString("\n\n--- Named Entities ---\n")
	writeEntities(&b, set)
	return b.String()
}

// Write replaces path with the formatted result. The content goes to a
// temporary file in the same directory first, so readers never see a
// partially written file.
func (w *FileWriter) Write(path, summary string, set domain.EntitySet) error {
	tmp, err := afero.TempFile(w.fs, filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(Format(summary, set)); err != nil {
		tmp.Close()
		w.fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		w.fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.fs.Chmod(tmpName, 0644); err != nil {
		w.fs.Remove(tmpName)
		return err
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		w.fs.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
