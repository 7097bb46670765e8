package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
)

func newTestWatchOptions(t *testing.T, provider quote.Provider) *watchOptions {
	return &watchOptions{
		file:        newTestFile(t, samplePortfolio()),
		newProvider: providerFactory(provider),
		currency:    "USD",
		locale:      "en-US",
		log:         zerolog.Nop(),
		delay:       time.Second,
		now:         func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) },
	}
}

// runWatchFor executes the watch command until it returns or d elapses.
func runWatchFor(t *testing.T, opts *watchOptions, d time.Duration, args ...string) (string, error) {
	t.Helper()
	cmd := newWatchCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestWatchCmd_RendersUntilInterrupted(t *testing.T) {
	provider := sampleProvider()

	output, err := runWatchFor(t, newTestWatchOptions(t, provider), 200*time.Millisecond)

	require.NoError(t, err)
	assert.Contains(t, output, "AAPL")
	assert.Contains(t, output, "$150.25")
	assert.Contains(t, output, "Updated: 2024-01-02 03:04:05")
	assert.NotContains(t, output, clearScreen)
	assert.Equal(t, []portfolio.Symbol{"AAPL", "MSFT"}, provider.Calls())
}

func TestWatchCmd_ClearsTerminal(t *testing.T) {
	opts := newTestWatchOptions(t, sampleProvider())
	opts.clear = true

	output, err := runWatchFor(t, opts, 200*time.Millisecond)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, clearScreen))
}

func TestWatchCmd_ContinuesAfterFetchError(t *testing.T) {
	provider := sampleProvider().WithError("AAPL", errors.New("boom"))

	output, err := runWatchFor(t, newTestWatchOptions(t, provider), 200*time.Millisecond)

	require.NoError(t, err)
	assert.Contains(t, output, "Error retrieving quote for AAPL: boom (retrying in 1s)")
	assert.NotContains(t, output, "Updated:")
}

func TestWatchCmd_StopOnError(t *testing.T) {
	provider := sampleProvider().WithError("MSFT", errors.New("boom"))

	output, err := runWatchFor(t, newTestWatchOptions(t, provider), 5*time.Second, "--stop-on-error")

	var fetchErr *quote.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, portfolio.Symbol("MSFT"), fetchErr.Symbol)
	assert.Empty(t, output)
}

func TestWatchCmd_ConfigurationErrorTerminates(t *testing.T) {
	provider := sampleProvider().WithError("AAPL", &quote.ConfigurationError{Err: errors.New("invalid token")})

	_, err := runWatchFor(t, newTestWatchOptions(t, provider), 5*time.Second)

	assert.True(t, quote.IsConfiguration(err))
}

func TestWatchCmd_RejectsShortDelay(t *testing.T) {
	provider := sampleProvider()

	_, err := runWatchFor(t, newTestWatchOptions(t, provider), time.Second, "-d", "500ms")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh delay must be at least 1s")
	assert.Empty(t, provider.Calls())
}

func TestWatchCmd_DelayFlag(t *testing.T) {
	opts := newTestWatchOptions(t, sampleProvider())
	cmd := newWatchCmd(opts)

	require.NoError(t, cmd.Flags().Parse([]string{"--refresh-delay", "30s"}))

	assert.Equal(t, 30*time.Second, opts.delay)
}
