// Package render turns a portfolio and its quotes into display tables.
package render

// Align is the horizontal alignment of a cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Color is a semantic foreground color hint.
type Color int

const (
	ColorDefault Color = iota
	ColorAffirmative
	ColorWarning
)

func (c Color) String() string {
	switch c {
	case ColorAffirmative:
		return "affirmative"
	case ColorWarning:
		return "warning"
	}
	return "default"
}

// Cell is one display cell with its style hints.
type Cell struct {
	Text  string
	Align Align
	Bold  bool
	Color Color
}

// Row is an ordered sequence of cells, one per column.
type Row []Cell

// Table is a header plus rows, ready to be painted by a display sink.
type Table struct {
	Header []string
	Rows   []Row
}

// Texts returns the plain text of every cell, row by row.
func (t *Table) Texts() [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		texts := make([]string, len(r))
		for i, c := range r {
			texts[i] = c.Text
		}
		out = append(out, texts)
	}
	return out
}
