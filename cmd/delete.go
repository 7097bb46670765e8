package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonandersen/folio/internal/portfolio"
)

// deleteOptions holds dependencies for the delete command.
type deleteOptions struct {
	file *portfolio.File
}

// newDeleteCmd creates the delete command with the given options.
func newDeleteCmd(opts *deleteOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete SYMBOL",
		Aliases: []string{"rm", "remove"},
		Short:   "Remove a symbol from the portfolio",
		Long: `Remove every holding and watch entry for SYMBOL.

Example:
  folio delete AAPL`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, opts, args[0])
		},
	}

	cmd.SilenceUsage = true

	return cmd
}

func runDelete(cmd *cobra.Command, opts *deleteOptions, symbol string) error {
	p, err := loadPortfolio(cmd, opts.file)
	if err != nil {
		return err
	}

	next, removed := p.Without(portfolio.Symbol(symbol))
	if removed == 0 {
		return fmt.Errorf("%s is not in the portfolio", symbol)
	}

	if err := opts.file.Save(next); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%d %s)\n", symbol, removed, plural(removed, "entry", "entries"))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	opts := &deleteOptions{}
	deleteCmd := newDeleteCmd(opts)
	deleteCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		opts.file = portfolioFile()
		return nil
	}

	rootCmd.AddCommand(deleteCmd)
}
