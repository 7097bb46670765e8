package render_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
	"github.com/jonandersen/folio/internal/quote/quotetest"
	"github.com/jonandersen/folio/internal/render"
)

func holding(qty uint32, cents int64) portfolio.Holding {
	return portfolio.Holding{Quantity: qty, PurchasePrice: money.New(cents, money.USD)}
}

func TestOnce_OneFetchPerDistinctSymbol(t *testing.T) {
	provider := quotetest.NewProvider().
		WithPrice("AAPL", 15000).
		WithPrice("MSFT", 30000)
	p := portfolio.Portfolio{Items: []portfolio.Item{
		portfolio.Watch{Sym: "AAPL"},
		portfolio.Price{Sym: "MSFT", Holding: holding(1, 25000)},
		portfolio.Price{Sym: "AAPL", Holding: holding(2, 10000)},
		portfolio.Watch{Sym: "MSFT"},
	}}

	table, err := render.Once(context.Background(), p, provider, render.NewFormatter("en-US", zerolog.Nop()))

	require.NoError(t, err)
	assert.Equal(t, []portfolio.Symbol{"AAPL", "MSFT"}, provider.Calls())
	assert.Equal(t, render.QuoteColumns, table.Header)
	require.Len(t, table.Rows, 4)

	var symbols []string
	for _, r := range table.Texts() {
		symbols = append(symbols, r[0])
	}
	assert.Equal(t, []string{"AAPL", "MSFT", "AAPL", "MSFT"}, symbols)

	// duplicates render independently
	assert.Equal(t, "$50.00", table.Rows[1][10].Text)
	assert.Equal(t, "$100.00", table.Rows[2][10].Text)
	assert.Equal(t, render.Placeholder, table.Rows[3][10].Text)
}

func TestOnce_EveryRowHasAllColumns(t *testing.T) {
	provider := quotetest.NewProvider().WithPrice("AAPL", 100)
	p := portfolio.Portfolio{Items: []portfolio.Item{
		portfolio.Watch{Sym: "AAPL"},
		portfolio.Price{Sym: "AAPL", Holding: holding(1, 100)},
	}}

	table, err := render.Once(context.Background(), p, provider, render.NewFormatter("en-US", zerolog.Nop()))

	require.NoError(t, err)
	for _, r := range table.Rows {
		assert.Len(t, r, len(render.QuoteColumns))
		for _, c := range r {
			assert.NotEmpty(t, c.Text)
		}
	}
}

func TestOnce_FailureProducesNoTable(t *testing.T) {
	provider := quotetest.NewProvider().
		WithPrice("AAPL", 100).
		WithError("MSFT", errors.New("timeout")).
		WithPrice("AMZN", 100)
	p := portfolio.Portfolio{Items: []portfolio.Item{
		portfolio.Watch{Sym: "AAPL"},
		portfolio.Watch{Sym: "MSFT"},
		portfolio.Watch{Sym: "AMZN"},
	}}

	table, err := render.Once(context.Background(), p, provider, render.NewFormatter("en-US", zerolog.Nop()))

	assert.Nil(t, table)
	var fetchErr *quote.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, portfolio.Symbol("MSFT"), fetchErr.Symbol)
	assert.Equal(t, []portfolio.Symbol{"AAPL", "MSFT"}, provider.Calls())
}

func TestOnce_EmptyPortfolio(t *testing.T) {
	provider := quotetest.NewProvider()

	table, err := render.Once(context.Background(), portfolio.Portfolio{}, provider, render.NewFormatter("en-US", zerolog.Nop()))

	require.NoError(t, err)
	assert.Equal(t, render.QuoteColumns, table.Header)
	assert.Empty(t, table.Rows)
	assert.Empty(t, provider.Calls())
}

func TestHoldings(t *testing.T) {
	p := portfolio.Portfolio{Items: []portfolio.Item{
		portfolio.Watch{Sym: "AAPL"},
		portfolio.Price{Sym: "MSFT", Holding: portfolio.Holding{
			Quantity:      10,
			PurchasePrice: money.New(25050, money.USD),
			PurchaseDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		}},
		portfolio.Price{Sym: "AMZN", Holding: holding(3, 12000)},
	}}

	table := render.NewFormatter("en-US", zerolog.Nop()).Holdings(p)

	assert.Equal(t, render.HoldingsColumns, table.Header)
	assert.Equal(t, [][]string{
		{"MSFT", "2024-03-15", "$250.50", "10"},
		{"AMZN", render.Placeholder, "$120.00", "3"},
	}, table.Texts())
}
