package models

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/octet"

	"github.com/google/uuid"
)

// KeyPairModel is the GORM database model for derived key pairs.
// Exponents and modulus are stored as decimal text since they exceed any integer column.
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	PublicExponent  string    `gorm:"not null;type:text"`
	PrivateExponent string    `gorm:"not null;type:text"`
	Modulus         string    `gorm:"not null;type:text"`
	ModulusBits     int       `gorm:"not null;index"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts the GORM model back into a key pair
func (m *KeyPairModel) ToDomain() (*crypto.KeyPair, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid key pair id %q: %w", m.ID, err)
	}

	e, err := octet.ParseDecimal(m.PublicExponent)
	if err != nil {
		return nil, fmt.Errorf("invalid public exponent of key pair %s: %w", m.ID, err)
	}
	d, err := octet.ParseDecimal(m.PrivateExponent)
	if err != nil {
		return nil, fmt.Errorf("invalid private exponent of key pair %s: %w", m.ID, err)
	}
	n, err := octet.ParseDecimal(m.Modulus)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus of key pair %s: %w", m.ID, err)
	}

	return crypto.RestoreKeyPair(id, e, d, n)
}

// FromDomain converts a key pair to a GORM model stamped with createdAt
func (m *KeyPairModel) FromDomain(kp *crypto.KeyPair, createdAt time.Time) {
	n := kp.N()

	m.ID = kp.ID().String()
	m.PublicExponent = kp.E().String()
	m.PrivateExponent = kp.D().String()
	m.Modulus = n.String()
	m.ModulusBits = n.BitLen()
	m.DateTimeCreated = createdAt
}
