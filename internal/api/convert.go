package api

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
	"github.com/jonandersen/folio/pkg/quoteapi"
)

var hundred = decimal.NewFromInt(100)

// Convert maps an API quote onto the domain quote. Amounts go through
// decimal into minor units of the quote currency, or of fallbackCurrency
// when the API does not name a known one.
func Convert(raw *quoteapi.Quote, fallbackCurrency string) (quote.Quote, error) {
	code := fallbackCurrency
	if raw.Currency != "" {
		if _, err := portfolio.LookupCurrency(raw.Currency); err == nil {
			code = raw.Currency
		}
	}

	price, err := amount(raw.LatestPrice, code)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("latest price: %w", err)
	}
	if price == nil {
		return quote.Quote{}, fmt.Errorf("latest price missing")
	}

	q := quote.Quote{Symbol: portfolio.Symbol(raw.Symbol), Price: price}

	if q.Change, err = amount(raw.Change, code); err != nil {
		return quote.Quote{}, fmt.Errorf("change: %w", err)
	}
	if raw.ChangePercent != nil {
		d, err := decimal.NewFromString(raw.ChangePercent.String())
		if err != nil {
			return quote.Quote{}, fmt.Errorf("change percent: %w", err)
		}
		pct := d.Mul(hundred).InexactFloat64()
		q.ChangePercent = &pct
	}

	if raw.HasRange() {
		r := &quote.DayRange{}
		fields := []struct {
			name string
			in   *json.Number
			out  **money.Money
		}{
			{"open", raw.Open, &r.Open},
			{"low", raw.Low, &r.Low},
			{"high", raw.High, &r.High},
			{"close", raw.Close, &r.Close},
		}
		for _, f := range fields {
			if *f.out, err = amount(f.in, code); err != nil {
				return quote.Quote{}, fmt.Errorf("%s: %w", f.name, err)
			}
		}
		if r.Volume, err = volume(raw.LatestVolume); err != nil {
			return quote.Quote{}, fmt.Errorf("volume: %w", err)
		}
		q.Range = r
	}

	return q, nil
}

func amount(n *json.Number, code string) (*money.Money, error) {
	if n == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return nil, err
	}
	return portfolio.MoneyFromDecimal(d, code)
}

func volume(n *json.Number) (*uint64, error) {
	if n == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("negative volume %s", d)
	}
	v := d.Truncate(0).BigInt().Uint64()
	return &v, nil
}
