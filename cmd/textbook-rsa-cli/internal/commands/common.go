package commands

import (
	"context"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/octet"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// newProcessor builds an RSA processor using crypto/rand padding and the given public exponent
func newProcessor(log logger.Logger, publicExponent *big.Int) (cryptoalg.RSAProcessor, error) {
	processor, err := cryptography.NewRSAProcessor(log, cryptography.NewPKCS1Codec(nil), publicExponent)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	return processor, nil
}

func getStringFlag(cmd *cobra.Command, name string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	return value, nil
}

// getDecimalFlag reads a required flag holding a decimal integer
func getDecimalFlag(cmd *cobra.Command, name string) (*big.Int, error) {
	value, err := getStringFlag(cmd, name)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, fmt.Errorf("--%s is required", name)
	}
	x, err := octet.ParseDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	return x, nil
}

// openKeyRepository connects to the keyring database and migrates its schema.
// The returned close function must be called once the repository is no longer used.
func openKeyRepository(settings config.DatabaseSettings, log logger.Logger) (keys.KeyPairRepository, func(), error) {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open keyring: %w", err)
	}

	closeDB := func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn("Failed to close keyring: ", err)
		}
	}

	if err := persistence.Migrate(db); err != nil {
		closeDB()
		return nil, nil, err
	}

	repo, err := persistence.NewGormKeyPairRepository(db, log)
	if err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to create key pair repository: %w", err)
	}

	return repo, closeDB, nil
}

// getKeyIDFlag reads an optional key pair identifier, returning uuid.Nil when unset
func getKeyIDFlag(cmd *cobra.Command) (uuid.UUID, error) {
	value, err := getStringFlag(cmd, "key-id")
	if err != nil {
		return uuid.Nil, err
	}
	if value == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid key-id flag: %w", err)
	}
	return id, nil
}

// loadKeyPair fetches a stored key pair from the keyring
func loadKeyPair(ctx context.Context, settings config.DatabaseSettings, log logger.Logger, id uuid.UUID) (*crypto.KeyPair, error) {
	repo, closeRepo, err := openKeyRepository(settings, log)
	if err != nil {
		return nil, err
	}
	defer closeRepo()

	keyPair, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load key pair: %w", err)
	}
	return keyPair, nil
}
