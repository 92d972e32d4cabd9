package crypto

import (
	"math/big"

	"github.com/google/uuid"
)

// PublicKey is the read-only public view {e, n} of a key pair
type PublicKey struct {
	e *big.Int
	n *big.Int
}

// NewPublicKey creates a public key from an exponent and a modulus.
// Both values are copied; later changes to the arguments do not affect the key.
func NewPublicKey(e, n *big.Int) (PublicKey, error) {
	if e == nil || n == nil {
		return PublicKey{}, Errorf("NewPublicKey", "%w", ErrNilKey)
	}
	if n.Sign() <= 0 {
		return PublicKey{}, Errorf("NewPublicKey", "%w: modulus must be positive", ErrInvalidModulus)
	}
	return PublicKey{e: new(big.Int).Set(e), n: new(big.Int).Set(n)}, nil
}

// E returns a copy of the public exponent
func (k PublicKey) E() *big.Int { return copyInt(k.e) }

// N returns a copy of the modulus
func (k PublicKey) N() *big.Int { return copyInt(k.n) }

// Size returns the modulus size in bytes
func (k PublicKey) Size() int { return byteSize(k.n) }

// IsZero reports whether the key was never initialised
func (k PublicKey) IsZero() bool { return k.e == nil || k.n == nil }

// PrivateKey is the read-only private view {d, n} of a key pair
type PrivateKey struct {
	d *big.Int
	n *big.Int
}

// NewPrivateKey creates a private key from a private exponent and a modulus.
// Both values are copied.
func NewPrivateKey(d, n *big.Int) (PrivateKey, error) {
	if d == nil || n == nil {
		return PrivateKey{}, Errorf("NewPrivateKey", "%w", ErrNilKey)
	}
	if n.Sign() <= 0 {
		return PrivateKey{}, Errorf("NewPrivateKey", "%w: modulus must be positive", ErrInvalidModulus)
	}
	return PrivateKey{d: new(big.Int).Set(d), n: new(big.Int).Set(n)}, nil
}

// D returns a copy of the private exponent
func (k PrivateKey) D() *big.Int { return copyInt(k.d) }

// N returns a copy of the modulus
func (k PrivateKey) N() *big.Int { return copyInt(k.n) }

// Size returns the modulus size in bytes
func (k PrivateKey) Size() int { return byteSize(k.n) }

// IsZero reports whether the key was never initialised
func (k PrivateKey) IsZero() bool { return k.d == nil || k.n == nil }

// KeyPair holds the exponents and modulus derived from two primes.
// It is immutable once derived.
type KeyPair struct {
	id uuid.UUID
	e  *big.Int
	d  *big.Int
	n  *big.Int
}

// NewKeyPair creates a key pair with a fresh identifier. Values are copied.
func NewKeyPair(e, d, n *big.Int) (*KeyPair, error) {
	return newKeyPair("NewKeyPair", uuid.New(), e, d, n)
}

// RestoreKeyPair rebuilds a previously derived key pair under its original identifier
func RestoreKeyPair(id uuid.UUID, e, d, n *big.Int) (*KeyPair, error) {
	if id == uuid.Nil {
		return nil, Errorf("RestoreKeyPair", "key pair id cannot be empty")
	}
	return newKeyPair("RestoreKeyPair", id, e, d, n)
}

func newKeyPair(op string, id uuid.UUID, e, d, n *big.Int) (*KeyPair, error) {
	if e == nil || d == nil || n == nil {
		return nil, Errorf(op, "%w", ErrNilKey)
	}
	if n.Sign() <= 0 {
		return nil, Errorf(op, "%w: modulus must be positive", ErrInvalidModulus)
	}
	return &KeyPair{
		id: id,
		e:  new(big.Int).Set(e),
		d:  new(big.Int).Set(d),
		n:  new(big.Int).Set(n),
	}, nil
}

// ID returns the identifier assigned at derivation time
func (kp *KeyPair) ID() uuid.UUID { return kp.id }

// E returns a copy of the public exponent
func (kp *KeyPair) E() *big.Int { return copyInt(kp.e) }

// D returns a copy of the private exponent
func (kp *KeyPair) D() *big.Int { return copyInt(kp.d) }

// N returns a copy of the modulus
func (kp *KeyPair) N() *big.Int { return copyInt(kp.n) }

// PublicKey returns the {e, n} view
func (kp *KeyPair) PublicKey() PublicKey {
	return PublicKey{e: kp.E(), n: kp.N()}
}

// PrivateKey returns the {d, n} view
func (kp *KeyPair) PrivateKey() PrivateKey {
	return PrivateKey{d: kp.D(), n: kp.N()}
}

func copyInt(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}

func byteSize(n *big.Int) int {
	if n == nil {
		return 0
	}
	return (n.BitLen() + 7) / 8
}
