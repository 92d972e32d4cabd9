// Package main is the entry point for the textbook-rsa-cli application.
// It loads the configuration, registers the key derivation, encryption, decryption,
// keyring and self-test commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/textbook-rsa/cmd/textbook-rsa-cli/internal/commands"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	// Optional YAML file; TEXTBOOK_RSA_* environment variables override it
	configPath := os.Getenv("CONFIG_PATH")

	cliConfig, err := config.InitializeCLIConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA operations CLI tool",
		Long: `textbook-rsa-cli derives RSA key pairs from two primes and encrypts or decrypts
hexadecimal octet strings with PKCS#1 v1.5 style padding.

Messages and ciphertexts are uppercase hex strings, two digits per byte.
This is a teaching implementation: it offers no side-channel or padding-oracle protection.

Configuration is read from the YAML file named by CONFIG_PATH, if set, and from
TEXTBOOK_RSA_* environment variables (e.g. TEXTBOOK_RSA_KEY_PRIME_P).
Derived key pairs can be stored in a SQLite or PostgreSQL keyring and referenced by --key-id.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd, cliConfig); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command, cliConfig *config.CLIConfig) error {
	handler, err := commands.NewRSACommandHandler(cliConfig)
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	if err := commands.InitRSACommands(rootCmd, handler); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := commands.InitKeyringCommands(rootCmd, handler); err != nil {
		return fmt.Errorf("failed to initialize keyring commands: %w", err)
	}

	if err := commands.InitSelfTestCommands(rootCmd, handler); err != nil {
		return fmt.Errorf("failed to initialize self-test commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
