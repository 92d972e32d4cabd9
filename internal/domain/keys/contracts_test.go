//go:build unit
// +build unit

package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyPairQueryValidation(t *testing.T) {
	tests := []struct {
		name          string
		query         *KeyPairQuery
		expectedError bool
	}{
		{"empty query", &KeyPairQuery{}, false},
		{"paged query", &KeyPairQuery{MinModulusBits: 256, Limit: 10, Offset: 20}, false},
		{"negative limit", &KeyPairQuery{Limit: -1}, true},
		{"negative offset", &KeyPairQuery{Offset: -5}, true},
		{"negative modulus bits", &KeyPairQuery{MinModulusBits: -8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
