package quote

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jonandersen/folio/internal/portfolio"
)

// Cache maps symbols to the quotes fetched during one render pass. It is
// built fresh for every pass and never reused across passes.
type Cache struct {
	quotes map[portfolio.Symbol]Quote
}

// Collect fetches the quote of every distinct symbol referenced by items,
// in item order, one call per symbol. The first failure aborts collection
// and is returned; no partial cache is returned. Configuration errors are
// returned as is, any other failure as a *FetchError naming the symbol.
func Collect(ctx context.Context, items []portfolio.Item, provider Provider, log zerolog.Logger) (*Cache, error) {
	c := &Cache{quotes: make(map[portfolio.Symbol]Quote, len(items))}

	for _, it := range items {
		sym := it.Symbol()
		if _, ok := c.quotes[sym]; ok {
			continue
		}

		log.Debug().Str("symbol", string(sym)).Msg("fetching quote")
		q, err := provider.FetchRealTime(ctx, sym)
		if err != nil {
			return nil, wrapFetchError(sym, err)
		}
		if q.Symbol == "" {
			q.Symbol = sym
		}
		c.quotes[sym] = q
	}
	return c, nil
}

func wrapFetchError(sym portfolio.Symbol, err error) error {
	if IsConfiguration(err) {
		return err
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return err
	}
	return &FetchError{Symbol: sym, Err: err}
}

// Get returns the cached quote for sym.
func (c *Cache) Get(sym portfolio.Symbol) (Quote, bool) {
	q, ok := c.quotes[sym]
	return q, ok
}

// Len returns the number of distinct symbols cached.
func (c *Cache) Len() int {
	return len(c.quotes)
}
