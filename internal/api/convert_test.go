package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonandersen/folio/pkg/quoteapi"
)

func num(s string) *json.Number {
	n := json.Number(s)
	return &n
}

func TestConvert_PriceOnly(t *testing.T) {
	q, err := Convert(&quoteapi.Quote{Symbol: "AAPL", LatestPrice: num("150.25")}, "USD")
	require.NoError(t, err)

	assert.Equal(t, "$150.25", q.Price.Display())
	assert.Nil(t, q.Change)
	assert.Nil(t, q.ChangePercent)
	assert.Nil(t, q.Range)
}

func TestConvert_Currency(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		want     string
	}{
		{"quote currency wins", "EUR", "EUR"},
		{"unknown falls back", "???", "USD"},
		{"missing falls back", "", "USD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Convert(&quoteapi.Quote{LatestPrice: num("1"), Currency: tt.currency}, "USD")
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Price.Currency().Code)
		})
	}
}

func TestConvert_MinorUnits(t *testing.T) {
	q, err := Convert(&quoteapi.Quote{LatestPrice: num("1234.5"), Currency: "JPY"}, "USD")
	require.NoError(t, err)

	assert.Equal(t, int64(1235), q.Price.Amount())
}

func TestConvert_PartialRange(t *testing.T) {
	q, err := Convert(&quoteapi.Quote{LatestPrice: num("10"), High: num("11"), LatestVolume: num("1e3")}, "USD")
	require.NoError(t, err)

	require.NotNil(t, q.Range)
	assert.Nil(t, q.Range.Open)
	assert.Equal(t, int64(1100), q.Range.High.Amount())
	assert.Equal(t, uint64(1000), *q.Range.Volume)
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   *quoteapi.Quote
	}{
		{"missing price", &quoteapi.Quote{}},
		{"bad change", &quoteapi.Quote{LatestPrice: num("1"), Change: num("abc")}},
		{"negative volume", &quoteapi.Quote{LatestPrice: num("1"), LatestVolume: num("-5")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.in, "USD")
			assert.Error(t, err)
		})
	}
}
