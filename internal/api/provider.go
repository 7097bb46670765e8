// Package api adapts the quote API client to the quote.Provider contract.
package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jonandersen/folio/internal/keyring"
	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
	"github.com/jonandersen/folio/pkg/quoteapi"
)

// QuoteProvider fetches real-time quotes from the quote API.
type QuoteProvider struct {
	client   *quoteapi.Client
	currency string
	log      zerolog.Logger
}

// NewQuoteProvider resolves the API token from store and builds a provider.
// Quotes that do not name a known currency are read in defaultCurrency.
// Every failure is a *quote.ConfigurationError.
func NewQuoteProvider(store keyring.Store, baseURL, defaultCurrency string, log zerolog.Logger) (*QuoteProvider, error) {
	token, err := store.Get(keyring.ServiceName, keyring.KeyAPIToken)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, &quote.ConfigurationError{
				Err: fmt.Errorf("API token not set. Run: folio configure\nOr set %s environment variable", keyring.EnvAPIToken),
			}
		}
		return nil, &quote.ConfigurationError{Err: fmt.Errorf("failed to retrieve API token: %w", err)}
	}
	if baseURL == "" {
		return nil, &quote.ConfigurationError{Err: errors.New("API base URL is empty")}
	}
	if _, err := portfolio.LookupCurrency(defaultCurrency); err != nil {
		return nil, &quote.ConfigurationError{Err: err}
	}

	client := quoteapi.NewClient(baseURL, token)
	client.Logger = log.With().Str("component", "quoteapi").Logger()

	return &QuoteProvider{
		client:   client,
		currency: defaultCurrency,
		log:      log.With().Str("component", "provider").Logger(),
	}, nil
}

// FetchRealTime implements quote.Provider. A rejected token is reported as
// a configuration error, anything else as a fetch error for symbol.
func (p *QuoteProvider) FetchRealTime(ctx context.Context, symbol portfolio.Symbol) (quote.Quote, error) {
	raw, err := p.client.GetQuote(ctx, string(symbol))
	if err != nil {
		var apiErr *quoteapi.APIError
		if errors.As(err, &apiErr) && (apiErr.IsUnauthorized() || apiErr.IsForbidden()) {
			return quote.Quote{}, &quote.ConfigurationError{Err: err}
		}
		return quote.Quote{}, &quote.FetchError{Symbol: symbol, Err: err}
	}

	q, err := Convert(raw, p.currency)
	if err != nil {
		return quote.Quote{}, &quote.FetchError{Symbol: symbol, Err: err}
	}
	if q.Symbol == "" {
		q.Symbol = symbol
	}
	if q.Price.Currency().Code != p.currency {
		p.log.Debug().Str("symbol", string(symbol)).Str("currency", q.Price.Currency().Code).Msg("quote not in default currency")
	}
	return q, nil
}
