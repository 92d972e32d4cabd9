package cryptoalg

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
)

// RSAProcessor handles textbook RSA operations over arbitrary-precision integers.
// Messages and ciphertexts cross this boundary as uppercase hexadecimal octet strings.
// NOTE: this is not a production-grade cryptosystem. Padding validation is deterministic
// and offers no padding-oracle defenses.
type RSAProcessor interface {
	// GenerateKey derives a key pair from two distinct primes and the configured public exponent.
	// Fails with crypto.ErrNonInvertibleExponent if gcd(e, φ(n)) != 1.
	GenerateKey(p, q *big.Int) (*crypto.KeyPair, error)

	// Encrypt pads the message to the modulus width and computes m^e mod n.
	// Fails with crypto.ErrMessageTooLong if the message exceeds byteLen(n) - 11 bytes.
	Encrypt(publicKey crypto.PublicKey, message string) (string, error)

	// Decrypt computes c^d mod n and strips the padding.
	// Fails with crypto.ErrMalformedEncoding if the recovered block has no zero separator.
	Decrypt(privateKey crypto.PrivateKey, ciphertext string) (string, error)
}

// PaddingCodec encodes messages into blocks sized to a modulus and decodes them back.
type PaddingCodec interface {
	// Encode builds 0x00 || 0x02 || PS || 0x00 || M with len(result) == byteLen(modulus).
	Encode(message []byte, modulus *big.Int) ([]byte, error)

	// Decode returns everything after the first zero byte following the two-byte prefix.
	Decode(block []byte) ([]byte, error)
}
