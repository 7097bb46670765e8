package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonandersen/folio/internal/portfolio"
)

func TestDeleteCmd_RemovesEveryEntry(t *testing.T) {
	file := newTestFile(t, samplePortfolio())
	cmd := newDeleteCmd(&deleteOptions{file: file})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"MSFT"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Removed MSFT (2 entries)")

	p, err := file.Load()
	require.NoError(t, err)
	assert.Equal(t, []portfolio.Item{portfolio.Watch{Sym: "AAPL"}}, p.Items)
}

func TestDeleteCmd_NotFound(t *testing.T) {
	file := newTestFile(t, samplePortfolio())
	cmd := newDeleteCmd(&deleteOptions{file: file})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"msft"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "msft is not in the portfolio")

	p, err := file.Load()
	require.NoError(t, err)
	assert.Len(t, p.Items, 3)
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "entry", plural(1, "entry", "entries"))
	assert.Equal(t, "entries", plural(0, "entry", "entries"))
}
