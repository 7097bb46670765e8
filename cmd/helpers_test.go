package cmd

import (
	"path/filepath"
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
	"github.com/jonandersen/folio/internal/quote/quotetest"
)

// newTestFile returns a portfolio file in a temp dir, pre-populated with p
// unless p is nil.
func newTestFile(t *testing.T, p *portfolio.Portfolio) *portfolio.File {
	t.Helper()
	f := portfolio.NewFile(filepath.Join(t.TempDir(), "portfolio.yaml"), zerolog.Nop())
	if p != nil {
		require.NoError(t, f.Save(*p))
	}
	return f
}

func samplePortfolio() *portfolio.Portfolio {
	return &portfolio.Portfolio{
		DefaultCurrency: money.USD,
		Items: []portfolio.Item{
			portfolio.Watch{Sym: "AAPL"},
			portfolio.Price{Sym: "MSFT", Holding: portfolio.Holding{Quantity: 4, PurchasePrice: money.New(1000, money.USD)}},
			portfolio.Watch{Sym: "MSFT"},
		},
	}
}

func sampleProvider() *quotetest.Provider {
	return quotetest.NewProvider().
		WithPrice("AAPL", 15025).
		WithPrice("MSFT", 1250)
}

func providerFactory(p quote.Provider) func(string) (quote.Provider, error) {
	return func(string) (quote.Provider, error) { return p, nil }
}
