package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jonandersen/folio/internal/config"
	"github.com/jonandersen/folio/internal/output"
	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
	"github.com/jonandersen/folio/internal/refresh"
	"github.com/jonandersen/folio/internal/render"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// watchOptions holds dependencies for the watch command.
type watchOptions struct {
	file        *portfolio.File
	newProvider func(currency string) (quote.Provider, error)
	currency    string
	locale      string
	jsonMode    bool
	log         zerolog.Logger

	delay       time.Duration
	stopOnError bool
	clear       bool // stdout is a terminal
	now         func() time.Time
}

// newWatchCmd creates the watch command with the given options.
func newWatchCmd(opts *watchOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Refresh live quotes on a timer",
		Long: `Show the portfolio table and refresh it until interrupted (Ctrl+C).

A failed refresh keeps the last table on screen, prints the error and
tries again after the delay. Use --stop-on-error to exit instead.
Missing or rejected API credentials always stop the loop.

Examples:
  folio watch
  folio watch -d 30s
  folio watch --stop-on-error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().DurationVarP(&opts.delay, "refresh-delay", "d", opts.delay, "Delay between refreshes (default from config)")
	cmd.Flags().BoolVar(&opts.stopOnError, "stop-on-error", false, "Exit on the first failed refresh")

	cmd.SilenceUsage = true

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions) error {
	if opts.delay < config.MinRefreshDelay {
		return fmt.Errorf("refresh delay must be at least %s, got %s", config.MinRefreshDelay, opts.delay)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := loadPortfolio(cmd, opts.file)
	if err != nil {
		return err
	}

	provider, err := opts.newProvider(p.Currency(opts.currency))
	if err != nil {
		return err
	}

	now := opts.now
	if now == nil {
		now = time.Now
	}
	w := cmd.OutOrStdout()
	out := output.New(w, opts.jsonMode)

	loop := &refresh.Loop{
		Portfolio: p,
		Provider:  provider,
		Formatter: render.NewFormatter(opts.locale, opts.log),
		Delay:     opts.delay,
		Log:       opts.log,
		OnTable: func(t *render.Table) {
			if opts.clear && !opts.jsonMode {
				_, _ = io.WriteString(w, clearScreen)
			}
			if err := out.Render(t); err != nil {
				opts.log.Error().Err(err).Msg("failed to write table")
			}
			_ = out.Notice("Updated: %s", now().Format("2006-01-02 15:04:05"))
		},
		OnError: func(err error) {
			notice := fmt.Errorf("%s (retrying in %s)", errorMessage(err), opts.delay)
			if werr := out.Error(notice); werr != nil {
				opts.log.Error().Err(werr).Msg("failed to write error notice")
			}
		},
	}
	if opts.stopOnError {
		loop.Policy = refresh.Stop
	}

	return loop.Run(ctx)
}

func init() {
	opts := &watchOptions{}
	watchCmd := newWatchCmd(opts)
	watchCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("refresh-delay") {
			opts.delay = app.cfg.RefreshDelay
		}
		opts.file = portfolioFile()
		opts.newProvider = newQuoteProvider
		opts.currency = app.cfg.DefaultCurrency
		opts.locale = app.cfg.Locale
		opts.jsonMode = GetJSONMode()
		opts.log = app.log
		opts.clear = term.IsTerminal(int(os.Stdout.Fd()))
		return nil
	}

	rootCmd.AddCommand(watchCmd)
}
