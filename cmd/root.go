package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jonandersen/folio/internal/api"
	"github.com/jonandersen/folio/internal/config"
	"github.com/jonandersen/folio/internal/keyring"
	"github.com/jonandersen/folio/internal/logger"
	"github.com/jonandersen/folio/internal/portfolio"
	"github.com/jonandersen/folio/internal/quote"
)

var Version = "dev"

var (
	// jsonOutput controls whether output is formatted as JSON
	jsonOutput    bool
	configPath    string
	portfolioPath string
	logLevel      string
)

// app holds what the real commands share once configuration is loaded.
var app struct {
	cfg   *config.Config
	log   zerolog.Logger
	store keyring.Store
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Track holdings and live stock quotes",
	Long: `folio keeps a small portfolio of watched symbols and holdings and shows
live quotes for them, once or refreshed on a timer.`,
	Version:           Version,
	SilenceErrors:     true,
	PersistentPreRunE: loadApp,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().StringVarP(&portfolioPath, "file", "f", "", "Portfolio file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// GetJSONMode returns whether JSON output mode is enabled.
func GetJSONMode() bool {
	return jsonOutput
}

func loadApp(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if portfolioPath != "" {
		cfg.PortfolioPath = portfolioPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	app.cfg = cfg
	app.log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: term.IsTerminal(int(os.Stderr.Fd())),
	})
	app.store = keyring.NewEnvStore(keyring.NewSystemStore())
	return nil
}

func portfolioFile() *portfolio.File {
	return portfolio.NewFile(app.cfg.PortfolioPath, app.log)
}

func newQuoteProvider(currency string) (quote.Provider, error) {
	return api.NewQuoteProvider(app.store, app.cfg.APIBaseURL, currency, app.log)
}

// loadPortfolio loads the portfolio file, creating the example portfolio on
// first use.
func loadPortfolio(cmd *cobra.Command, file *portfolio.File) (portfolio.Portfolio, error) {
	p, created, err := file.LoadOrCreate()
	if err != nil {
		return portfolio.Portfolio{}, err
	}
	if created {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "No portfolio found, created an example at %s\n", file.Path)
	}
	return p, nil
}

// errorMessage renders err for the terminal. Quote failures name the symbol.
func errorMessage(err error) string {
	var fetchErr *quote.FetchError
	if errors.As(err, &fetchErr) {
		return fmt.Sprintf("Error retrieving quote for %s: %v", fetchErr.Symbol, fetchErr.Err)
	}
	return "Error: " + err.Error()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}
