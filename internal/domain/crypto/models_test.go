//go:build unit
// +build unit

package crypto

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyPair(t *testing.T) {
	e := big.NewInt(17)
	d := big.NewInt(2753)
	n := big.NewInt(3233)

	kp, err := NewKeyPair(e, d, n)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, kp.ID())

	// mutating the inputs must not leak into the pair
	e.SetInt64(3)
	n.SetInt64(1)
	assert.Equal(t, int64(17), kp.E().Int64())
	assert.Equal(t, int64(3233), kp.N().Int64())

	// nor must mutating the returned values
	kp.D().SetInt64(0)
	assert.Equal(t, int64(2753), kp.D().Int64())
}

func TestRestoreKeyPair(t *testing.T) {
	id := uuid.New()

	kp, err := RestoreKeyPair(id, big.NewInt(17), big.NewInt(2753), big.NewInt(3233))
	require.NoError(t, err)
	assert.Equal(t, id, kp.ID())
	assert.Equal(t, int64(2753), kp.D().Int64())

	_, err = RestoreKeyPair(uuid.Nil, big.NewInt(17), big.NewInt(2753), big.NewInt(3233))
	assert.Error(t, err)

	_, err = RestoreKeyPair(id, big.NewInt(17), big.NewInt(2753), big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidModulus)
}

func TestKeyPairViews(t *testing.T) {
	kp, err := NewKeyPair(big.NewInt(17), big.NewInt(2753), big.NewInt(3233))
	require.NoError(t, err)

	pub := kp.PublicKey()
	priv := kp.PrivateKey()

	assert.Equal(t, int64(17), pub.E().Int64())
	assert.Equal(t, int64(3233), pub.N().Int64())
	assert.Equal(t, int64(2753), priv.D().Int64())
	assert.Equal(t, int64(3233), priv.N().Int64())
	assert.Equal(t, 2, pub.Size())
	assert.Equal(t, 2, priv.Size())
	assert.False(t, pub.IsZero())
	assert.True(t, PublicKey{}.IsZero())
	assert.True(t, PrivateKey{}.IsZero())
}

func TestNewKeyValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() error
		wantErr error
	}{
		{
			name: "public key nil exponent",
			build: func() error {
				_, err := NewPublicKey(nil, big.NewInt(3233))
				return err
			},
			wantErr: ErrNilKey,
		},
		{
			name: "public key zero modulus",
			build: func() error {
				_, err := NewPublicKey(big.NewInt(17), big.NewInt(0))
				return err
			},
			wantErr: ErrInvalidModulus,
		},
		{
			name: "private key nil modulus",
			build: func() error {
				_, err := NewPrivateKey(big.NewInt(2753), nil)
				return err
			},
			wantErr: ErrNilKey,
		},
		{
			name: "private key negative modulus",
			build: func() error {
				_, err := NewPrivateKey(big.NewInt(2753), big.NewInt(-5))
				return err
			},
			wantErr: ErrInvalidModulus,
		},
		{
			name: "key pair nil private exponent",
			build: func() error {
				_, err := NewKeyPair(big.NewInt(17), nil, big.NewInt(3233))
				return err
			},
			wantErr: ErrNilKey,
		},
		{
			name: "valid public key",
			build: func() error {
				_, err := NewPublicKey(big.NewInt(17), big.NewInt(3233))
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			var opErr *Error
			assert.True(t, errors.As(err, &opErr))
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	err := Errorf("Encode", "%w: %d bytes", ErrMessageTooLong, 27)
	assert.EqualError(t, err, "rsa.Encode: rsa: message too long: 27 bytes")
	assert.ErrorIs(t, err, ErrMessageTooLong)
}
