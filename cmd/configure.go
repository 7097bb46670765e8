package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jonandersen/folio/internal/config"
	"github.com/jonandersen/folio/internal/keyring"
)

// passwordReader abstracts terminal password input for testing.
type passwordReader interface {
	ReadPassword() (string, error)
	IsTerminal() bool
}

// terminalReader reads passwords from the terminal using golang.org/x/term.
type terminalReader struct {
	fd int
}

// newTerminalReader creates a reader for the given file descriptor.
func newTerminalReader(fd int) *terminalReader {
	return &terminalReader{fd: fd}
}

func (r *terminalReader) ReadPassword() (string, error) {
	password, err := term.ReadPassword(r.fd)
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func (r *terminalReader) IsTerminal() bool {
	return term.IsTerminal(r.fd)
}

// configureOptions holds dependencies for the configure command.
// This allows for dependency injection in tests.
type configureOptions struct {
	configPath     string
	store          keyring.Store
	passwordReader passwordReader

	clear bool
}

// newConfigureCmd creates the configure command with the given options.
func newConfigureCmd(opts *configureOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure the quote API token",
		Long: `Store the quote API token in the system keyring.

You will be prompted to enter the token securely. The FOLIO_API_TOKEN
environment variable, when set, takes precedence over the keyring.

Example:
  folio configure
  folio configure --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.clear, "clear", false, "Remove the stored API token")

	// Don't show usage info on validation errors - just show the error
	cmd.SilenceUsage = true

	return cmd
}

func runConfigure(cmd *cobra.Command, opts *configureOptions) error {
	if opts.clear {
		if err := opts.store.Delete(keyring.ServiceName, keyring.KeyAPIToken); err != nil {
			return fmt.Errorf("failed to remove API token: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "API token removed.")
		return nil
	}

	// Verify we're running in an interactive terminal
	if !opts.passwordReader.IsTerminal() {
		return fmt.Errorf("configure requires an interactive terminal\nRun this command directly in your terminal (not piped or in a script)\nOr set %s environment variable", keyring.EnvAPIToken)
	}

	if _, err := opts.store.Get(keyring.ServiceName, keyring.KeyAPIToken); err == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "An API token is already stored and will be replaced.")
	} else if !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to read keyring: %w", err)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), "Enter your API token: ")
	token, err := opts.passwordReader.ReadPassword()
	if err != nil {
		return fmt.Errorf("failed to read API token: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout()) // Print newline after hidden input

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("API token cannot be empty")
	}

	if err := opts.store.Set(keyring.ServiceName, keyring.KeyAPIToken, token); err != nil {
		return fmt.Errorf("failed to store API token in keyring: %w", err)
	}

	// Write a config file with defaults so the settings are discoverable.
	if _, err := os.Stat(opts.configPath); errors.Is(err, os.ErrNotExist) {
		if err := config.Save(opts.configPath, config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", opts.configPath)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration saved successfully!")
	return nil
}

func init() {
	opts := &configureOptions{}
	configureCmd := newConfigureCmd(opts)
	configureCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		opts.configPath = configPath
		if opts.configPath == "" {
			opts.configPath = config.ConfigPath()
		}
		opts.store = keyring.NewSystemStore()
		opts.passwordReader = newTerminalReader(int(os.Stdin.Fd()))
		return nil
	}

	rootCmd.AddCommand(configureCmd)
}
