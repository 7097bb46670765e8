// Package output paints tables and messages to a writer, as styled text
// or as JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/jonandersen/folio/internal/render"
)

// Formatter handles output formatting (table or JSON).
type Formatter struct {
	Writer   io.Writer
	JSONMode bool
	// Styled paints tables with borders, alignment and colors. It defaults
	// to true when Writer is a terminal; otherwise tables are tab aligned.
	Styled bool

	styles styles
}

// New creates a new Formatter with the specified writer and JSON mode.
func New(w io.Writer, jsonMode bool) *Formatter {
	return &Formatter{
		Writer:   w,
		JSONMode: jsonMode,
		Styled:   isTerminal(w),
		styles:   newStyles(lipgloss.NewRenderer(w)),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Render paints a rendered table with its style hints, or as a JSON array
// of objects keyed by header in JSON mode.
func (f *Formatter) Render(t *render.Table) error {
	if f.JSONMode {
		return f.tableAsJSON(t.Header, t.Texts())
	}
	if !f.Styled {
		return f.tableAsText(t.Header, t.Texts())
	}

	rows := t.Rows
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.styles.border).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		Headers(t.Header...).
		Rows(t.Texts()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return f.styles.header
			}
			if row < 0 || row >= len(rows) || col >= len(rows[row]) {
				return f.styles.cell
			}
			return f.styles.forCell(rows[row][col])
		})

	_, err := fmt.Fprintln(f.Writer, tbl.String())
	return err
}

// Table outputs data as a formatted table or JSON array depending on mode.
// Headers define column names, rows contain the data.
func (f *Formatter) Table(headers []string, rows [][]string) error {
	if f.JSONMode {
		return f.tableAsJSON(headers, rows)
	}
	return f.tableAsText(headers, rows)
}

// tableAsText renders a table with aligned columns.
func (f *Formatter) tableAsText(headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return err
	}

	separators := make([]string, len(headers))
	for i, h := range headers {
		separators[i] = strings.Repeat("-", len(h))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(separators, "\t")); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// tableAsJSON renders a table as a JSON array of objects.
func (f *Formatter) tableAsJSON(headers []string, rows [][]string) error {
	result := make([]map[string]string, 0, len(rows))

	for _, row := range rows {
		obj := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				obj[header] = row[i]
			} else {
				obj[header] = ""
			}
		}
		result = append(result, obj)
	}

	return f.Print(result)
}

// Print outputs data as formatted JSON (pretty-printed) or as a simple string representation.
func (f *Formatter) Print(data any) error {
	if f.JSONMode {
		encoder := json.NewEncoder(f.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	}

	_, err := fmt.Fprintf(f.Writer, "%v\n", data)
	return err
}

// Notice prints an informational line. It is silent in JSON mode so the
// output stays machine readable.
func (f *Formatter) Notice(format string, args ...any) error {
	if f.JSONMode {
		return nil
	}
	_, err := fmt.Fprintln(f.Writer, f.styles.muted.Render(fmt.Sprintf(format, args...)))
	return err
}

// Error prints an error notice. In JSON mode it is an object with an
// "error" key.
func (f *Formatter) Error(err error) error {
	if f.JSONMode {
		return f.Print(map[string]string{"error": err.Error()})
	}
	_, werr := fmt.Fprintln(f.Writer, f.styles.err.Render(err.Error()))
	return werr
}
