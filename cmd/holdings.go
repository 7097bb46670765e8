package cmd

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonandersen/folio/internal/output"
	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/render"
)

// holdingsOptions holds dependencies for the holdings command.
type holdingsOptions struct {
	file     *portfolio.File
	locale   string
	jsonMode bool
	log      zerolog.Logger
}

// newHoldingsCmd creates the holdings command with the given options.
func newHoldingsCmd(opts *holdingsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holdings",
		Short: "List holdings and watched symbols",
		Long: `List the holdings recorded in the portfolio without fetching quotes.

Examples:
  folio holdings
  folio holdings --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHoldings(cmd, opts)
		},
	}

	cmd.SilenceUsage = true

	return cmd
}

func runHoldings(cmd *cobra.Command, opts *holdingsOptions) error {
	p, err := loadPortfolio(cmd, opts.file)
	if err != nil {
		return err
	}

	out := output.New(cmd.OutOrStdout(), opts.jsonMode)
	f := render.NewFormatter(opts.locale, opts.log)
	if err := out.Render(f.Holdings(p)); err != nil {
		return err
	}

	watched := p.Watched()
	if len(watched) == 0 {
		return nil
	}
	names := make([]string, len(watched))
	for i, s := range watched {
		names[i] = string(s)
	}
	return out.Notice("Also watching: %s", strings.Join(names, ", "))
}

func init() {
	opts := &holdingsOptions{}
	holdingsCmd := newHoldingsCmd(opts)
	holdingsCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		opts.file = portfolioFile()
		opts.locale = app.cfg.Locale
		opts.jsonMode = GetJSONMode()
		opts.log = app.log
		return nil
	}

	rootCmd.AddCommand(holdingsCmd)
}
