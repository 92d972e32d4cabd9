package keys

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrKeyPairNotFound is returned when no stored key pair carries the requested identifier
var ErrKeyPairNotFound = errors.New("key pair not found")

// KeyPairQuery filters and pages stored key pairs
type KeyPairQuery struct {
	MinModulusBits int `validate:"gte=0"`
	Limit          int `validate:"gte=0"`
	Offset         int `validate:"gte=0"`
}

// Validate checks the query bounds
func (q *KeyPairQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// KeyPairRepository defines the interface for storing derived key pairs
type KeyPairRepository interface {
	Create(ctx context.Context, keyPair *crypto.KeyPair) error
	List(ctx context.Context, query *KeyPairQuery) ([]*crypto.KeyPair, error)
	GetByID(ctx context.Context, keyPairID uuid.UUID) (*crypto.KeyPair, error)
	DeleteByID(ctx context.Context, keyPairID uuid.UUID) error
}
