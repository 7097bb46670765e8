// Package portfolio holds the in-memory ledger of tracked symbols and
// holdings, and its YAML file persistence.
package portfolio

import (
	"time"

	"github.com/Rhymond/go-money"
)

// Symbol is a case-sensitive ticker. It is the equality key for quotes.
type Symbol string

// Holding is the cost basis attached to a priced item. It is replaced
// wholesale on edit, never mutated.
type Holding struct {
	Quantity      uint32
	PurchasePrice *money.Money
	PurchaseDate  time.Time // zero when unknown
}

// HasPurchaseDate reports whether the purchase date was recorded.
func (h Holding) HasPurchaseDate() bool {
	return !h.PurchaseDate.IsZero()
}

// Item is a tracked portfolio entry: either a Watch or a Price.
type Item interface {
	Symbol() Symbol
	isItem()
}

// Watch tracks a symbol without a cost basis.
type Watch struct {
	Sym Symbol
}

// Price tracks a symbol together with a holding.
type Price struct {
	Sym     Symbol
	Holding Holding
}

func (w Watch) Symbol() Symbol { return w.Sym }
func (p Price) Symbol() Symbol { return p.Sym }

func (Watch) isItem() {}
func (Price) isItem() {}

// Portfolio is an ordered list of items plus an optional default currency.
// Duplicate symbols are allowed and rendered independently.
type Portfolio struct {
	DefaultCurrency string // ISO 4217 code, empty when unset
	Items           []Item
}

// ExampleSymbols are watched by the portfolio created on first run.
var ExampleSymbols = []Symbol{"AAPL", "AMZN", "MSFT"}

// Example returns the portfolio written when no portfolio file exists yet.
func Example() Portfolio {
	items := make([]Item, 0, len(ExampleSymbols))
	for _, s := range ExampleSymbols {
		items = append(items, Watch{Sym: s})
	}
	return Portfolio{DefaultCurrency: money.USD, Items: items}
}

// Currency returns the default currency, or fallback when none is set.
func (p Portfolio) Currency(fallback string) string {
	if p.DefaultCurrency != "" {
		return p.DefaultCurrency
	}
	return fallback
}

// With returns a new portfolio with item appended. p is left untouched.
func (p Portfolio) With(item Item) Portfolio {
	items := make([]Item, 0, len(p.Items)+1)
	items = append(items, p.Items...)
	items = append(items, item)
	return Portfolio{DefaultCurrency: p.DefaultCurrency, Items: items}
}

// Without returns a new portfolio with every item for sym removed, and the
// number of items dropped.
func (p Portfolio) Without(sym Symbol) (Portfolio, int) {
	items := make([]Item, 0, len(p.Items))
	for _, it := range p.Items {
		if it.Symbol() != sym {
			items = append(items, it)
		}
	}
	return Portfolio{DefaultCurrency: p.DefaultCurrency, Items: items}, len(p.Items) - len(items)
}

// Holdings returns the priced items in order.
func (p Portfolio) Holdings() []Price {
	var out []Price
	for _, it := range p.Items {
		if pr, ok := it.(Price); ok {
			out = append(out, pr)
		}
	}
	return out
}

// Watched returns the symbols of watch-only items in order.
func (p Portfolio) Watched() []Symbol {
	var out []Symbol
	for _, it := range p.Items {
		if w, ok := it.(Watch); ok {
			out = append(out, w.Sym)
		}
	}
	return out
}
