//go:build integration
// +build integration

package persistence

import (
	"context"
	"math/big"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPairSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	keyPair := CreateTestKeyPair(t)
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

	var stored models.KeyPairModel
	require.NoError(t, ctx.DB.First(&stored, "id = ?", keyPair.ID().String()).Error)
	assert.Equal(t, "2753", stored.PrivateExponent)
	assert.Equal(t, 12, stored.ModulusBits)
}

func TestKeyPairSqliteRepository_CreateDuplicate(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	keyPair := CreateTestKeyPair(t)
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))
	assert.Error(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))
}

func TestKeyPairSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	keyPair := CreateTestKeyPair(t)
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

	fetched, err := ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID())
	require.NoError(t, err)
	assert.Equal(t, keyPair.ID(), fetched.ID())
	assert.Equal(t, keyPair.E().String(), fetched.E().String())
	assert.Equal(t, keyPair.D().String(), fetched.D().String())
	assert.Equal(t, keyPair.N().String(), fetched.N().String())
}

func TestKeyPairSqliteRepository_GetByIDNotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.KeyPairRepo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
}

func TestKeyPairSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	small := CreateTestKeyPair(t)
	large := CreateTestKeyPairWithModulus(t, new(big.Int).Lsh(big.NewInt(1), 263))

	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), small))
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), large))

	all, err := ctx.KeyPairRepo.List(context.Background(), &keys.KeyPairQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := ctx.KeyPairRepo.List(context.Background(), &keys.KeyPairQuery{MinModulusBits: 256})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, large.ID(), filtered[0].ID())

	paged, err := ctx.KeyPairRepo.List(context.Background(), &keys.KeyPairQuery{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, paged, 1)

	_, err = ctx.KeyPairRepo.List(context.Background(), &keys.KeyPairQuery{Limit: -1})
	assert.Error(t, err)
}

func TestKeyPairSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	keyPair := CreateTestKeyPair(t)
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

	require.NoError(t, ctx.KeyPairRepo.DeleteByID(context.Background(), keyPair.ID()))

	_, err := ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID())
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)

	err = ctx.KeyPairRepo.DeleteByID(context.Background(), keyPair.ID())
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
}
