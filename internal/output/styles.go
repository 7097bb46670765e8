package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jonandersen/folio/internal/render"
)

// Color constants
const (
	ColorPrimary = lipgloss.Color("39")  // Cyan/blue
	ColorMuted   = lipgloss.Color("241") // Gray
	ColorBorder  = lipgloss.Color("240")
	ColorGreen   = lipgloss.Color("82")  // Green for gains
	ColorRed     = lipgloss.Color("196") // Red for losses
)

// styles are bound to the renderer of one writer, so colors are dropped
// when that writer is not a terminal.
type styles struct {
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		border: r.NewStyle().Foreground(ColorBorder),
		muted:  r.NewStyle().Foreground(ColorMuted),
		err:    r.NewStyle().Foreground(ColorRed),
	}
}

func (s styles) forCell(c render.Cell) lipgloss.Style {
	st := s.cell
	switch c.Align {
	case render.AlignCenter:
		st = st.Align(lipgloss.Center)
	case render.AlignRight:
		st = st.Align(lipgloss.Right)
	default:
		st = st.Align(lipgloss.Left)
	}
	switch c.Color {
	case render.ColorAffirmative:
		st = st.Foreground(ColorGreen)
	case render.ColorWarning:
		st = st.Foreground(ColorRed)
	}
	if c.Bold {
		st = st.Bold(true)
	}
	return st
}
