package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
)

// Placeholder is shown for values that are absent or not applicable.
const Placeholder = "-"

const (
	arrowUp   = "↑"
	arrowDown = "↓"
)

// QuoteColumns is the header of the quote table.
var QuoteColumns = []string{
	"Symbol", "Price", "Change", "Open", "Low", "High", "Close", "Volume", "Purchased", "Quantity", "Value",
}

// Formatter builds cells using locale-aware number grouping.
type Formatter struct {
	printer *message.Printer
	log     zerolog.Logger
}

// NewFormatter creates a formatter for a BCP-47 locale such as "en-US".
// Unknown locales fall back to American English.
func NewFormatter(locale string, log zerolog.Logger) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		log:     log.With().Str("component", "render").Logger(),
	}
}

// PlaceholderCell returns the centered placeholder cell.
func PlaceholderCell() Cell {
	return Cell{Text: Placeholder, Align: AlignCenter}
}

// MoneyCell renders an amount right-aligned in its currency's format.
func MoneyCell(m *money.Money) Cell {
	return Cell{Text: m.Display(), Align: AlignRight}
}

// MoneyCellOr renders m, or the placeholder when m is nil.
func MoneyCellOr(m *money.Money) Cell {
	if m == nil {
		return PlaceholderCell()
	}
	return MoneyCell(m)
}

// NumberCell renders an integer right-aligned with locale thousands grouping.
func (f *Formatter) NumberCell(n int64) Cell {
	return Cell{Text: f.printer.Sprintf("%d", n), Align: AlignRight}
}

// NumberCellOr renders n, or the placeholder when n is nil.
func (f *Formatter) NumberCellOr(n *uint64) Cell {
	if n == nil {
		return PlaceholderCell()
	}
	if *n > math.MaxInt64 {
		return Cell{Text: strconv.FormatUint(*n, 10), Align: AlignRight}
	}
	return f.NumberCell(int64(*n))
}

// ChangeString formats a change as "<signed amount> <arrow><abs percent>%".
// A non-negative change points up.
func ChangeString(change *money.Money, percent float64) string {
	arrow := arrowDown
	amount := change.Display()
	if !change.IsNegative() {
		arrow = arrowUp
		amount = "+" + amount
	}
	return fmt.Sprintf("%s %s%s%%", amount, arrow, formatPercent(percent))
}

// formatPercent prints |p| with up to two decimals and at least one.
func formatPercent(p float64) string {
	s := strconv.FormatFloat(math.Round(math.Abs(p)*100)/100, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ChangeCell renders the change of q, colored by its sign. Both the amount
// and the percentage must be present, otherwise the placeholder is shown.
func ChangeCell(q quote.Quote) Cell {
	if q.Change == nil || q.ChangePercent == nil {
		return PlaceholderCell()
	}
	color := ColorAffirmative
	if q.Change.IsNegative() {
		color = ColorWarning
	}
	return Cell{Text: ChangeString(q.Change, *q.ChangePercent), Align: AlignRight, Color: color}
}

func bold(c Cell) Cell {
	c.Bold = true
	return c
}

// rangeCells renders Open, Low, High, Close and Volume.
func (f *Formatter) rangeCells(r *quote.DayRange) []Cell {
	if r == nil {
		return []Cell{PlaceholderCell(), PlaceholderCell(), PlaceholderCell(), PlaceholderCell(), PlaceholderCell()}
	}
	return []Cell{
		MoneyCellOr(r.Open),
		MoneyCellOr(r.Low),
		MoneyCellOr(r.High),
		MoneyCellOr(r.Close),
		f.NumberCellOr(r.Volume),
	}
}

// Gain returns (price - purchase price) * quantity in minor units.
func Gain(price *money.Money, h portfolio.Holding) (*money.Money, error) {
	if price == nil || h.PurchasePrice == nil {
		return nil, fmt.Errorf("missing price")
	}
	diff, err := price.Subtract(h.PurchasePrice)
	if err != nil {
		return nil, err
	}
	return diff.Multiply(int64(h.Quantity)), nil
}

// Row formats one item against its quote. The row always has one cell per
// entry of QuoteColumns.
func (f *Formatter) Row(item portfolio.Item, q quote.Quote) Row {
	row := make(Row, 0, len(QuoteColumns))
	row = append(row, Cell{Text: string(item.Symbol())})
	row = append(row, MoneyCellOr(q.Price), ChangeCell(q))
	row = append(row, f.rangeCells(q.Range)...)

	switch it := item.(type) {
	case portfolio.Watch:
		row = append(row, PlaceholderCell(), PlaceholderCell(), PlaceholderCell())
	case portfolio.Price:
		row = append(row,
			bold(MoneyCellOr(it.Holding.PurchasePrice)),
			bold(f.NumberCell(int64(it.Holding.Quantity))),
			bold(f.valueCell(it, q)),
		)
	default:
		panic(fmt.Sprintf("render: unhandled item type %T", item))
	}
	return row
}

func (f *Formatter) valueCell(it portfolio.Price, q quote.Quote) Cell {
	gain, err := Gain(q.Price, it.Holding)
	if err != nil {
		f.log.Warn().Err(err).Str("symbol", string(it.Sym)).Msg("cannot compute value")
		return PlaceholderCell()
	}
	return MoneyCell(gain)
}
