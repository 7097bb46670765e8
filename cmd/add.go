package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonandersen/folio/internal/portfolio"
)

// addOptions holds dependencies for the add command.
type addOptions struct {
	file     *portfolio.File
	currency string

	price    string
	quantity string
	date     string
}

// newAddCmd creates the add command with the given options.
func newAddCmd(opts *addOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add SYMBOL",
		Short: "Add a holding or watched symbol",
		Long: `Add a symbol to the portfolio.

Without a price or quantity the symbol is only watched. With either, it is
recorded as a holding; a missing price or quantity counts as zero. Prices
are in the portfolio's default currency.

Examples:
  folio add AAPL                          # Watch Apple
  folio add MSFT -p 250.50 -q 10          # Hold 10 shares bought at 250.50
  folio add AMZN -p 120 -q 3 -d 2024-03-15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.price, "price", "p", "", "Purchase price per share")
	cmd.Flags().StringVarP(&opts.quantity, "quantity", "q", "", "Number of shares")
	cmd.Flags().StringVarP(&opts.date, "date", "d", "", "Purchase date (YYYY-MM-DD)")

	cmd.SilenceUsage = true

	return cmd
}

func runAdd(cmd *cobra.Command, opts *addOptions, symbol string) error {
	p, err := loadPortfolio(cmd, opts.file)
	if err != nil {
		return err
	}

	item, err := portfolio.ItemSpec{
		Symbol:   symbol,
		Price:    opts.price,
		Quantity: opts.quantity,
		Date:     opts.date,
		Currency: p.Currency(opts.currency),
	}.Item()
	if err != nil {
		return err
	}

	if err := opts.file.Save(p.With(item)); err != nil {
		return err
	}

	switch it := item.(type) {
	case portfolio.Watch:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", it.Sym)
	case portfolio.Price:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %d %s at %s\n", it.Holding.Quantity, it.Sym, it.Holding.PurchasePrice.Display())
	}
	return nil
}

func init() {
	opts := &addOptions{}
	addCmd := newAddCmd(opts)
	addCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		opts.file = portfolioFile()
		opts.currency = app.cfg.DefaultCurrency
		return nil
	}

	rootCmd.AddCommand(addCmd)
}
