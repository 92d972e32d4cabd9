package cryptography

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
)

// ModExp computes base^exponent mod modulus by square-and-multiply.
// The work is proportional to the bit length of the exponent, not its value.
// The result is always in [0, modulus).
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, crypto.Errorf("ModExp", "%w: modulus must be positive", crypto.ErrInvalidModulus)
	}
	if exponent == nil || exponent.Sign() < 0 {
		return nil, crypto.Errorf("ModExp", "%w", crypto.ErrNegativeExponent)
	}

	// Mod is Euclidean, so a negative base reduces into [0, modulus)
	b := new(big.Int).Mod(base, modulus)
	result := new(big.Int).Mod(big.NewInt(1), modulus)

	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
	}

	return result, nil
}
