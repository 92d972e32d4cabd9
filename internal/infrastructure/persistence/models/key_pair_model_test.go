//go:build unit
// +build unit

package models

import (
	"math/big"
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPairModel_FromDomain(t *testing.T) {
	keyPair, err := crypto.NewKeyPair(big.NewInt(17), big.NewInt(2753), big.NewInt(3233))
	require.NoError(t, err)
	createdAt := time.Now()

	model := &KeyPairModel{}
	model.FromDomain(keyPair, createdAt)

	assert.Equal(t, keyPair.ID().String(), model.ID)
	assert.Equal(t, "17", model.PublicExponent)
	assert.Equal(t, "2753", model.PrivateExponent)
	assert.Equal(t, "3233", model.Modulus)
	assert.Equal(t, 12, model.ModulusBits)
	assert.Equal(t, createdAt, model.DateTimeCreated)
}

func TestKeyPairModel_ToDomain(t *testing.T) {
	id := uuid.New()
	model := &KeyPairModel{
		ID:              id.String(),
		PublicExponent:  "65537",
		PrivateExponent: "3864874426133318487482502854607981134131535975363724712657461600195969519196673",
		Modulus:         "15850580429630744287493165806160404229518542335595893315529154728421396177786007",
		ModulusBits:     264,
		DateTimeCreated: time.Now(),
	}

	keyPair, err := model.ToDomain()
	require.NoError(t, err)

	assert.Equal(t, id, keyPair.ID())
	assert.Equal(t, int64(65537), keyPair.E().Int64())
	assert.Equal(t, model.PrivateExponent, keyPair.D().String())
	assert.Equal(t, model.Modulus, keyPair.N().String())
}

func TestKeyPairModel_ToDomainErrors(t *testing.T) {
	valid := KeyPairModel{
		ID:              uuid.NewString(),
		PublicExponent:  "17",
		PrivateExponent: "2753",
		Modulus:         "3233",
	}

	tests := []struct {
		name   string
		mutate func(m *KeyPairModel)
	}{
		{"invalid id", func(m *KeyPairModel) { m.ID = "not-a-uuid" }},
		{"invalid public exponent", func(m *KeyPairModel) { m.PublicExponent = "0x11" }},
		{"invalid private exponent", func(m *KeyPairModel) { m.PrivateExponent = "" }},
		{"invalid modulus", func(m *KeyPairModel) { m.Modulus = "abc" }},
		{"zero modulus", func(m *KeyPairModel) { m.Modulus = "0" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := valid
			tt.mutate(&model)

			_, err := model.ToDomain()
			assert.Error(t, err)
		})
	}
}
