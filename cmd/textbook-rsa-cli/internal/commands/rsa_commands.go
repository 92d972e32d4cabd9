package commands

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type RSACommandHandler struct {
	settings config.KeySettings
	database config.DatabaseSettings
	logger   logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler from the CLI configuration.
func NewRSACommandHandler(cfg *config.CLIConfig) (*RSACommandHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("CLI config cannot be nil")
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RSACommandHandler{
		settings: cfg.Key,
		database: cfg.Database,
		logger:   loggerInstance,
	}, nil
}

// GenerateKeyCmd derives a key pair from two primes and prints it, optionally storing it in the keyring
func (commandHandler *RSACommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	p, err := getDecimalFlag(cmd, "p")
	if err != nil {
		return err
	}
	q, err := getDecimalFlag(cmd, "q")
	if err != nil {
		return err
	}
	e, err := getDecimalFlag(cmd, "e")
	if err != nil {
		return err
	}
	store, err := cmd.Flags().GetBool("store")
	if err != nil {
		return fmt.Errorf("invalid store flag: %w", err)
	}

	processor, err := newProcessor(commandHandler.logger, e)
	if err != nil {
		return err
	}

	keyPair, err := processor.GenerateKey(p, q)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	if store {
		repo, closeRepo, err := openKeyRepository(commandHandler.database, commandHandler.logger)
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := repo.Create(cmd.Context(), keyPair); err != nil {
			return fmt.Errorf("failed to store key pair: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "key-id: %s\n", keyPair.ID())
	fmt.Fprintf(out, "e: %s\n", keyPair.E())
	fmt.Fprintf(out, "d: %s\n", keyPair.D())
	fmt.Fprintf(out, "n: %s\n", keyPair.N())
	return nil
}

// configuredExponent is the derivation exponent; encryption reads e from the key itself
func (commandHandler *RSACommandHandler) configuredExponent() *big.Int {
	return big.NewInt(int64(commandHandler.settings.PublicExponent))
}

// publicKeyFromFlags resolves {e, n} from the keyring when --key-id is set, otherwise from --e and --n
func (commandHandler *RSACommandHandler) publicKeyFromFlags(cmd *cobra.Command) (crypto.PublicKey, error) {
	id, err := getKeyIDFlag(cmd)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	if id != uuid.Nil {
		keyPair, err := loadKeyPair(cmd.Context(), commandHandler.database, commandHandler.logger, id)
		if err != nil {
			return crypto.PublicKey{}, err
		}
		return keyPair.PublicKey(), nil
	}

	e, err := getDecimalFlag(cmd, "e")
	if err != nil {
		return crypto.PublicKey{}, err
	}
	n, err := getDecimalFlag(cmd, "n")
	if err != nil {
		return crypto.PublicKey{}, err
	}
	return crypto.NewPublicKey(e, n)
}

// privateKeyFromFlags resolves {d, n} from the keyring when --key-id is set, otherwise from --d and --n
func (commandHandler *RSACommandHandler) privateKeyFromFlags(cmd *cobra.Command) (crypto.PrivateKey, error) {
	id, err := getKeyIDFlag(cmd)
	if err != nil {
		return crypto.PrivateKey{}, err
	}
	if id != uuid.Nil {
		keyPair, err := loadKeyPair(cmd.Context(), commandHandler.database, commandHandler.logger, id)
		if err != nil {
			return crypto.PrivateKey{}, err
		}
		return keyPair.PrivateKey(), nil
	}

	d, err := getDecimalFlag(cmd, "d")
	if err != nil {
		return crypto.PrivateKey{}, err
	}
	n, err := getDecimalFlag(cmd, "n")
	if err != nil {
		return crypto.PrivateKey{}, err
	}
	return crypto.NewPrivateKey(d, n)
}

// EncryptCmd encrypts a hex message with a public key
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	publicKey, err := commandHandler.publicKeyFromFlags(cmd)
	if err != nil {
		return err
	}

	processor, err := newProcessor(commandHandler.logger, commandHandler.configuredExponent())
	if err != nil {
		return err
	}

	message, err := getStringFlag(cmd, "message")
	if err != nil {
		return err
	}

	ciphertext, err := processor.Encrypt(publicKey, message)
	if err != nil {
		return fmt.Errorf("failed to encrypt message: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return nil
}

// DecryptCmd decrypts a hex ciphertext with a private key
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	privateKey, err := commandHandler.privateKeyFromFlags(cmd)
	if err != nil {
		return err
	}

	processor, err := newProcessor(commandHandler.logger, commandHandler.configuredExponent())
	if err != nil {
		return err
	}

	ciphertext, err := getStringFlag(cmd, "ciphertext")
	if err != nil {
		return err
	}

	message, err := processor.Decrypt(privateKey, ciphertext)
	if err != nil {
		return fmt.Errorf("failed to decrypt ciphertext: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command, handler *RSACommandHandler) error {
	if handler == nil {
		return fmt.Errorf("RSA command handler cannot be nil")
	}

	defaultExponent := strconv.Itoa(handler.settings.PublicExponent)

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Derive an RSA key pair from two primes",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().StringP("p", "", handler.settings.PrimeP, "First prime (decimal)")
	generateKeyCmd.Flags().StringP("q", "", handler.settings.PrimeQ, "Second prime (decimal)")
	generateKeyCmd.Flags().StringP("e", "", defaultExponent, "Public exponent (decimal)")
	generateKeyCmd.Flags().Bool("store", false, "Store the derived key pair in the keyring")
	rootCmd.AddCommand(generateKeyCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a hex octet string with a public key",
		Args:  cobra.NoArgs,
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("key-id", "", "", "Keyring key pair ID, replaces --e and --n")
	encryptCmd.Flags().StringP("e", "", defaultExponent, "Public exponent (decimal)")
	encryptCmd.Flags().StringP("n", "", "", "Modulus (decimal)")
	encryptCmd.Flags().StringP("message", "", "", "Message as an uppercase hex octet string")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a hex octet string with a private key",
		Args:  cobra.NoArgs,
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("key-id", "", "", "Keyring key pair ID, replaces --d and --n")
	decryptCmd.Flags().StringP("d", "", "", "Private exponent (decimal)")
	decryptCmd.Flags().StringP("n", "", "", "Modulus (decimal)")
	decryptCmd.Flags().StringP("ciphertext", "", "", "Ciphertext as an uppercase hex octet string")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
