//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModExp(t *testing.T) {
	tests := []struct {
		name                    string
		base, exponent, modulus int64
		want                    int64
	}{
		{"zero exponent", 7, 0, 13, 1},
		{"zero exponent modulus one", 7, 0, 1, 0},
		{"modulus one", 123, 456, 1, 0},
		{"small", 4, 13, 497, 445},
		{"base larger than modulus", 100, 3, 7, 1},
		{"zero base", 0, 5, 11, 0},
		{"negative base", -2, 3, 7, 6},
		{"textbook rsa encrypt", 65, 17, 3233, 2790},
		{"textbook rsa decrypt", 2790, 2753, 3233, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModExp(big.NewInt(tt.base), big.NewInt(tt.exponent), big.NewInt(tt.modulus))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestModExp_InvalidArguments(t *testing.T) {
	_, err := ModExp(big.NewInt(2), big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, crypto.ErrInvalidModulus)

	_, err = ModExp(big.NewInt(2), big.NewInt(3), big.NewInt(-5))
	assert.ErrorIs(t, err, crypto.ErrInvalidModulus)

	_, err = ModExp(big.NewInt(2), big.NewInt(-1), big.NewInt(5))
	assert.ErrorIs(t, err, crypto.ErrNegativeExponent)
}

func TestModExp_DoesNotModifyArguments(t *testing.T) {
	base, exponent, modulus := big.NewInt(100), big.NewInt(3), big.NewInt(7)

	_, err := ModExp(base, exponent, modulus)
	require.NoError(t, err)

	assert.Equal(t, int64(100), base.Int64())
	assert.Equal(t, int64(3), exponent.Int64())
	assert.Equal(t, int64(7), modulus.Int64())
}

func TestModExp_MatchesBigExp(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	limit := new(big.Int).Lsh(big.NewInt(1), 264)

	for i := 0; i < 100; i++ {
		base := new(big.Int).Rand(rng, limit)
		exponent := new(big.Int).Rand(rng, limit)
		modulus := new(big.Int).Add(new(big.Int).Rand(rng, limit), big.NewInt(1))

		got, err := ModExp(base, exponent, modulus)
		require.NoError(t, err)

		want := new(big.Int).Exp(base, exponent, modulus)
		assert.Zero(t, want.Cmp(got), "%s^%s mod %s", base, exponent, modulus)
	}
}
