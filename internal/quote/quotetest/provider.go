// Package quotetest provides a scripted quote.Provider for tests.
package quotetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/Rhymond/go-money"

	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
)

// Provider returns canned quotes and errors and records every call.
type Provider struct {
	mu     sync.Mutex
	quotes map[portfolio.Symbol]quote.Quote
	errs   map[portfolio.Symbol]error
	calls  []portfolio.Symbol
}

// NewProvider creates a provider with no quotes.
func NewProvider() *Provider {
	return &Provider{
		quotes: make(map[portfolio.Symbol]quote.Quote),
		errs:   make(map[portfolio.Symbol]error),
	}
}

// WithQuote registers the quote returned for q.Symbol.
func (p *Provider) WithQuote(q quote.Quote) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quotes[q.Symbol] = q
	return p
}

// WithPrice registers a quote carrying only a latest price in USD cents.
func (p *Provider) WithPrice(sym portfolio.Symbol, cents int64) *Provider {
	return p.WithQuote(quote.Quote{Symbol: sym, Price: money.New(cents, money.USD)})
}

// WithError makes fetches of sym fail with err.
func (p *Provider) WithError(sym portfolio.Symbol, err error) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs[sym] = err
	return p
}

// ClearError removes a failure registered with WithError.
func (p *Provider) ClearError(sym portfolio.Symbol) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.errs, sym)
}

// FetchRealTime implements quote.Provider.
func (p *Provider) FetchRealTime(_ context.Context, sym portfolio.Symbol) (quote.Quote, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, sym)
	if err, ok := p.errs[sym]; ok {
		return quote.Quote{}, err
	}
	q, ok := p.quotes[sym]
	if !ok {
		return quote.Quote{}, fmt.Errorf("unknown symbol %s", sym)
	}
	return q, nil
}

// Calls returns the symbols fetched so far, in call order.
func (p *Provider) Calls() []portfolio.Symbol {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]portfolio.Symbol, len(p.calls))
	copy(out, p.calls)
	return out
}

// Reset forgets recorded calls.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = nil
}
