package quote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
	"github.com/jonandersen/folio/internal/quote/quotetest"
)

func watches(syms ...portfolio.Symbol) []portfolio.Item {
	items := make([]portfolio.Item, 0, len(syms))
	for _, s := range syms {
		items = append(items, portfolio.Watch{Sym: s})
	}
	return items
}

func TestCollect_FetchesEachSymbolOnce(t *testing.T) {
	provider := quotetest.NewProvider().
		WithPrice("AAPL", 17550).
		WithPrice("MSFT", 38000).
		WithPrice("AMZN", 14025)

	items := watches("AAPL", "MSFT", "AAPL", "AMZN", "MSFT", "AAPL")

	cache, err := quote.Collect(context.Background(), items, provider, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, []portfolio.Symbol{"AAPL", "MSFT", "AMZN"}, provider.Calls())
	assert.Equal(t, 3, cache.Len())

	q, ok := cache.Get("MSFT")
	require.True(t, ok)
	assert.Equal(t, int64(38000), q.Price.Amount())
}

func TestCollect_SymbolsAreCaseSensitive(t *testing.T) {
	provider := quotetest.NewProvider().WithPrice("AAPL", 100).WithPrice("aapl", 200)

	_, err := quote.Collect(context.Background(), watches("AAPL", "aapl"), provider, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, []portfolio.Symbol{"AAPL", "aapl"}, provider.Calls())
}

func TestCollect_Empty(t *testing.T) {
	provider := quotetest.NewProvider()

	cache, err := quote.Collect(context.Background(), nil, provider, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 0, cache.Len())
	assert.Empty(t, provider.Calls())
}

func TestCollect_FailsFast(t *testing.T) {
	boom := errors.New("connection reset")
	provider := quotetest.NewProvider().
		WithPrice("AAPL", 100).
		WithError("MSFT", boom).
		WithPrice("AMZN", 300)

	cache, err := quote.Collect(context.Background(), watches("AAPL", "MSFT", "AMZN"), provider, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, cache)

	var fetchErr *quote.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, portfolio.Symbol("MSFT"), fetchErr.Symbol)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "error retrieving quote for MSFT: connection reset", err.Error())

	assert.Equal(t, []portfolio.Symbol{"AAPL", "MSFT"}, provider.Calls(), "no fetch after the failure")
}

func TestCollect_ConfigurationErrorPassesThrough(t *testing.T) {
	cfgErr := &quote.ConfigurationError{Err: errors.New("token rejected")}
	provider := quotetest.NewProvider().WithError("AAPL", cfgErr)

	_, err := quote.Collect(context.Background(), watches("AAPL"), provider, zerolog.Nop())
	require.Error(t, err)

	assert.True(t, quote.IsConfiguration(err))
	var fetchErr *quote.FetchError
	assert.False(t, errors.As(err, &fetchErr))
}

func TestCollect_FillsMissingSymbol(t *testing.T) {
	provider := quote.ProviderFunc(func(_ context.Context, _ portfolio.Symbol) (quote.Quote, error) {
		return quote.Quote{}, nil
	})

	cache, err := quote.Collect(context.Background(), watches("TSLA"), provider, zerolog.Nop())
	require.NoError(t, err)

	q, ok := cache.Get("TSLA")
	require.True(t, ok)
	assert.Equal(t, portfolio.Symbol("TSLA"), q.Symbol)
}
