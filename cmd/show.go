package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonandersen/folio/internal/output"
	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
	"github.com/jonandersen/folio/internal/render"
)

// showOptions holds dependencies for the show command.
// This allows for dependency injection in tests.
type showOptions struct {
	file        *portfolio.File
	newProvider func(currency string) (quote.Provider, error)
	currency    string
	locale      string
	jsonMode    bool
	log         zerolog.Logger
}

// newShowCmd creates the show command with the given options.
func newShowCmd(opts *showOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show live quotes for the portfolio",
		Long: `Fetch a quote for every symbol in the portfolio and print one table.

Each symbol is fetched once, even when it appears several times. If any
quote cannot be retrieved no table is printed.

Examples:
  folio show
  folio show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts)
		},
	}

	cmd.SilenceUsage = true

	return cmd
}

func runShow(cmd *cobra.Command, opts *showOptions) error {
	p, err := loadPortfolio(cmd, opts.file)
	if err != nil {
		return err
	}

	provider, err := opts.newProvider(p.Currency(opts.currency))
	if err != nil {
		return err
	}

	table, err := render.Once(cmd.Context(), p, provider, render.NewFormatter(opts.locale, opts.log))
	if err != nil {
		return err
	}

	return output.New(cmd.OutOrStdout(), opts.jsonMode).Render(table)
}

func init() {
	opts := &showOptions{}
	showCmd := newShowCmd(opts)
	showCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		opts.file = portfolioFile()
		opts.newProvider = newQuoteProvider
		opts.currency = app.cfg.DefaultCurrency
		opts.locale = app.cfg.Locale
		opts.jsonMode = GetJSONMode()
		opts.log = app.log
		return nil
	}

	rootCmd.AddCommand(showCmd)
}
