package render

import (
	"context"
	"strconv"

	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
)

// HoldingsColumns is the header of the holdings table.
var HoldingsColumns = []string{"Symbol", "Purchase Date", "Purchase Price", "Quantity"}

// Once runs one render pass: it collects the quote of every distinct symbol
// and formats one row per item, in portfolio order. On any fetch failure no
// table is produced and the error is returned.
func Once(ctx context.Context, p portfolio.Portfolio, provider quote.Provider, f *Formatter) (*Table, error) {
	cache, err := quote.Collect(ctx, p.Items, provider, f.log)
	if err != nil {
		return nil, err
	}
	return f.Build(p, cache), nil
}

// Build formats one row per item of p from an already collected cache.
// Every symbol of p must be present in cache.
func (f *Formatter) Build(p portfolio.Portfolio, cache *quote.Cache) *Table {
	t := &Table{Header: QuoteColumns, Rows: make([]Row, 0, len(p.Items))}
	for _, it := range p.Items {
		q, ok := cache.Get(it.Symbol())
		if !ok {
			f.log.Warn().Str("symbol", string(it.Symbol())).Msg("no quote collected")
			q = quote.Quote{Symbol: it.Symbol()}
		}
		t.Rows = append(t.Rows, f.Row(it, q))
	}
	return t
}

// Holdings lists the priced items of p without fetching any quote.
func (f *Formatter) Holdings(p portfolio.Portfolio) *Table {
	holdings := p.Holdings()
	t := &Table{Header: HoldingsColumns, Rows: make([]Row, 0, len(holdings))}
	for _, h := range holdings {
		date := PlaceholderCell()
		if h.Holding.HasPurchaseDate() {
			date = Cell{Text: h.Holding.PurchaseDate.Format(portfolio.DateLayout)}
		}
		t.Rows = append(t.Rows, Row{
			{Text: string(h.Sym)},
			date,
			MoneyCellOr(h.Holding.PurchasePrice),
			{Text: strconv.FormatUint(uint64(h.Holding.Quantity), 10), Align: AlignRight},
		})
	}
	return t
}
