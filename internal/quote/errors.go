package quote

import (
	"errors"
	"fmt"

	"github.com/jonandersen/folio/internal/portfolio"
)

// ConfigurationError reports a provider that cannot work at all, such as
// missing or rejected credentials. It is fatal.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("quote provider not configured: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// FetchError reports a failure to fetch the quote of one symbol. It aborts
// the render pass in progress only.
type FetchError struct {
	Symbol portfolio.Symbol
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error retrieving quote for %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsConfiguration reports whether err is, or wraps, a ConfigurationError.
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
