//go:build integration
// +build integration

package persistence

import (
	"math/big"
	"strings"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repository
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keys.KeyPairRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	keyPairRepo, err := NewGormKeyPairRepository(db, logger)
	require.NoError(t, err, "Failed to create key pair repository")

	return &TestContext{
		DB:          db,
		KeyPairRepo: keyPairRepo,
	}
}

// CreateTestKeyPair creates the textbook key pair {17, 2753, 3233} under a fresh id
func CreateTestKeyPair(t *testing.T) *crypto.KeyPair {
	t.Helper()

	keyPair, err := crypto.NewKeyPair(big.NewInt(17), big.NewInt(2753), big.NewInt(3233))
	require.NoError(t, err)
	return keyPair
}

// CreateTestKeyPairWithModulus creates a key pair whose modulus is n
func CreateTestKeyPairWithModulus(t *testing.T, n *big.Int) *crypto.KeyPair {
	t.Helper()

	keyPair, err := crypto.NewKeyPair(big.NewInt(crypto.DefaultPublicExponent), big.NewInt(1), n)
	require.NoError(t, err)
	return keyPair
}
