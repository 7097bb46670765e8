package quoteapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// GetQuote retrieves the real-time quote of one symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	path := fmt.Sprintf("/stock/%s/quote", url.PathEscape(symbol))
	resp, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var quote Quote
	if err := DecodeJSON(resp, &quote); err != nil {
		return nil, err
	}
	if quote.LatestPrice == nil {
		return nil, fmt.Errorf("quote for %s has no latest price", symbol)
	}

	return &quote, nil
}
