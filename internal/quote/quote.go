// Package quote defines market quotes, the provider contract and the
// per-render-pass quote cache.
package quote

import (
	"context"

	"github.com/Rhymond/go-money"

	"github.com/jonandersen/folio/internal/portfolio"
)

// DayRange is the trading-day range of a quote. Every field is optional.
type DayRange struct {
	Open   *money.Money
	Low    *money.Money
	High   *money.Money
	Close  *money.Money
	Volume *uint64
}

// Quote is a snapshot of market data for one symbol at fetch time.
type Quote struct {
	Symbol        portfolio.Symbol
	Price         *money.Money
	Change        *money.Money
	ChangePercent *float64 // percent points, 2.5 means 2.5%
	Range         *DayRange
}

// Provider fetches real-time quotes one symbol at a time.
type Provider interface {
	FetchRealTime(ctx context.Context, symbol portfolio.Symbol) (Quote, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, symbol portfolio.Symbol) (Quote, error)

// FetchRealTime calls f.
func (f ProviderFunc) FetchRealTime(ctx context.Context, symbol portfolio.Symbol) (Quote, error) {
	return f(ctx, symbol)
}
