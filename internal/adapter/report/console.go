package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"docsum/internal/domain"
)

const (
	DefaultWrapWidth = 80

	// NoEntitiesMessage is shown in place of the entity list when the
	// recognizer found nothing or could not be loaded.
	NoEntitiesMessage = "No entities found or Spacy model not loaded."
)

var banner = strings.Repeat("---", 10)

// Console renders run results for a human reader.
type Console struct {
	out   io.Writer
	width int
	title lipgloss.Style
}

// NewConsole writes to out, wrapping paragraphs at width columns. Titles are
// bold on a terminal and plain otherwise.
func NewConsole(out io.Writer, width int) *Console {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:   out,
		width: width,
		title: r.NewStyle().Bold(true),
	}
}

func (c *Console) NoContent() {
	fmt.Fprintln(c.out, "No content to summarise.")
}

func (c *Console) Original(text string) {
	c.section("Original Text:", c.wrap(text))
}

func (c *Console) Summary(text string) {
	c.section("Summary:", c.wrap(text))
}

func (c *Console) Entities(set domain.EntitySet) {
	var b strings.Builder
	writeEntities(&b, set)
	c.section("Named Entities:", strings.TrimSuffix(b.String(), "\n"))
}

func (c *Console) Saved(path string) {
	fmt.Fprintf(c.out, "Summary and entities saved to %s\n\n\n", path)
}

func (c *Console) SaveFailed(err error) {
	fmt.Fprintf(c.out, "Could not save results to file: %v\n\n\n", err)
}

func (c *Console) section(title, body string) {
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out, c.title.Render(title))
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out, body)
	fmt.Fprint(c.out, "\n\n")
}

// wrap collapses runs of whitespace and fills lines up to the width,
// breaking words that are longer than a line.
func (c *Console) wrap(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return ""
	}
	lines := strings.Split(ansi.Wrap(collapsed, c.width, ""), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func writeEntities(w io.Writer, set domain.EntitySet) {
	if set.Empty() {
		fmt.Fprintln(w, NoEntitiesMessage)
		return
	}
	for _, g := range set.Groups {
		fmt.Fprintf(w, "%s:\n", g.Label)
		for _, item := range g.Items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}
}
