package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsum/internal/domain"
)

var sampleEntities = domain.EntitySet{
	Groups: []domain.EntityGroup{
		{Label: "ORG", Items: []string{"Apple Inc."}},
		{Label: "PERSON", Items: []string{"Steve Jobs"}},
		{Label: "GPE", Items: []string{"Cupertino"}},
	},
}

func TestFormat(t *testing.T) {
	got := Format("Apple was founded in Cupertino.", sampleEntities)

	want := "--- Summary ---\n" +
		"Apple was founded in Cupertino.\n" +
		"\n" +
		"--- Named Entities ---\n" +
		"ORG:\n" +
		"  - Apple Inc.\n" +
		"PERSON:\n" +
		"  - Steve Jobs\n" +
		"GPE:\n" +
		"  - Cupertino\n"
	assert.Equal(t, want, got)
}

func TestFormatNoEntities(t *testing.T) {
	for _, set := range []domain.EntitySet{{}, {Unavailable: true, Hint: "install it"}} {
		got := Format("", set)
		assert.Equal(t, "--- Summary ---\n\n\n--- Named Entities ---\nNo entities found or Spacy model not loaded.\n", got)
	}
}

func TestFileWriterWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/docs", 0755))
	w := NewFileWriter(fs)

	path := "/docs/doc_summarised.txt"
	require.NoError(t, w.Write(path, "A summary.", sampleEntities))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, Format("A summary.", sampleEntities), string(data))

	entries, err := afero.ReadDir(fs, "/docs")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestFileWriterIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/docs", 0755))
	w := NewFileWriter(fs)
	path := "/docs/doc_summarised.txt"

	require.NoError(t, w.Write(path, "Same summary.", sampleEntities))
	first, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	require.NoError(t, w.Write(path, "Same summary.", sampleEntities))
	second, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestFileWriterReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := NewFileWriter(fs).Write("/docs/doc_summarised.txt", "x", domain.EntitySet{})
	assert.Error(t, err)
}

func TestConsoleSections(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 80)

	c.Original("Apple Inc. was founded by Steve Jobs in Cupertino.")
	c.Summary("Apple was founded.")
	c.Entities(sampleEntities)
	c.Saved("docs/doc_summarised.txt")

	want := banner + "\nOriginal Text:\n" + banner + "\n" +
		"Apple Inc. was founded by Steve Jobs in Cupertino.\n\n\n" +
		banner + "\nSummary:\n" + banner + "\n" +
		"Apple was founded.\n\n\n" +
		banner + "\nNamed Entities:\n" + banner + "\n" +
		"ORG:\n  - Apple Inc.\nPERSON:\n  - Steve Jobs\nGPE:\n  - Cupertino\n\n\n" +
		"Summary and entities saved to docs/doc_summarised.txt\n\n\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 30, len(banner))
}

func TestConsoleNoEntities(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 80)

	c.Entities(domain.EntitySet{Unavailable: true})
	c.SaveFailed(errors.New("permission denied"))

	out := buf.String()
	assert.Contains(t, out, "Named Entities:\n"+banner+"\n"+NoEntitiesMessage+"\n\n\n")
	assert.Contains(t, out, "Could not save results to file: permission denied\n")
}

func TestConsoleWrap(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog\n\n", 10)
	c := NewConsole(&bytes.Buffer{}, 80)

	got := c.wrap(text)
	lines := strings.Split(got, "\n")
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 80, line)
		assert.Equal(t, strings.TrimSpace(line), line)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(got))
}

func TestConsoleWrapLongWord(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, 10)
	got := c.wrap(strings.Repeat("x", 25))
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 10)
	}
	assert.Equal(t, strings.Repeat("x", 25), strings.ReplaceAll(got, "\n", ""))
}

func TestConsoleWrapEmpty(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, 0)
	assert.Equal(t, DefaultWrapWidth, c.width)
	assert.Equal(t, "", c.wrap("  \n\t "))
}
