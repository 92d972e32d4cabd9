package cryptography

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/octet"
)

var one = big.NewInt(1)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	publicExponent *big.Int
	codec          cryptoalg.PaddingCodec
	logger         logger.Logger
}

// Compile-time check that rsaProcessor implements cryptoalg.RSAProcessor
var _ cryptoalg.RSAProcessor = (*rsaProcessor)(nil)

// NewRSAProcessor creates and returns a new instance of rsaProcessor.
// A nil codec selects a PKCS#1 codec backed by crypto/rand, a nil publicExponent selects 65537.
func NewRSAProcessor(logger logger.Logger, codec cryptoalg.PaddingCodec, publicExponent *big.Int) (cryptoalg.RSAProcessor, error) {
	if logger == nil {
		return nil, crypto.Errorf("NewRSAProcessor", "logger cannot be nil")
	}
	if codec == nil {
		codec = NewPKCS1Codec(nil)
	}
	if publicExponent == nil {
		publicExponent = big.NewInt(crypto.DefaultPublicExponent)
	}
	if publicExponent.Cmp(one) <= 0 {
		return nil, crypto.Errorf("NewRSAProcessor", "public exponent must be greater than 1, got %s", publicExponent)
	}

	return &rsaProcessor{
		publicExponent: new(big.Int).Set(publicExponent),
		codec:          codec,
		logger:         logger,
	}, nil
}

// GenerateKey derives {e, d, n} from two distinct primes.
// Primality itself is not tested; the primes are supplied by the caller.
func (r *rsaProcessor) GenerateKey(p, q *big.Int) (*crypto.KeyPair, error) {
	if p == nil || q == nil {
		return nil, crypto.Errorf("GenerateKey", "%w: primes cannot be nil", crypto.ErrInvalidPrime)
	}
	if p.Cmp(one) <= 0 || q.Cmp(one) <= 0 {
		return nil, crypto.Errorf("GenerateKey", "%w: primes must be greater than 1", crypto.ErrInvalidPrime)
	}
	if p.Cmp(q) == 0 {
		return nil, crypto.Errorf("GenerateKey", "%w: primes must be distinct", crypto.ErrInvalidPrime)
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)

	bezout := ExtendedEuclid(r.publicExponent, phi)
	if bezout.GCD.Cmp(one) != 0 {
		return nil, crypto.Errorf("GenerateKey", "%w: gcd(e, φ(n)) = %s", crypto.ErrNonInvertibleExponent, bezout.GCD)
	}

	d := bezout.S
	for d.Sign() < 0 {
		d.Add(d, phi)
	}

	keyPair, err := crypto.NewKeyPair(r.publicExponent, d, n)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Derived RSA key pair ", keyPair.ID(), " with a ", n.BitLen(), "-bit modulus")
	return keyPair, nil
}

// Encrypt pads the hex message to the modulus width and computes m^e mod n.
// The ciphertext is returned as a minimal octet string.
func (r *rsaProcessor) Encrypt(publicKey crypto.PublicKey, message string) (string, error) {
	if publicKey.IsZero() {
		return "", crypto.Errorf("Encrypt", "%w", crypto.ErrNilKey)
	}

	plainText, err := octet.Decode(message)
	if err != nil {
		return "", crypto.Errorf("Encrypt", "invalid message: %w", err)
	}

	n := publicKey.N()
	block, err := r.codec.Encode(plainText, n)
	if err != nil {
		return "", err
	}

	m := new(big.Int).SetBytes(block)
	c, err := ModExp(m, publicKey.E(), n)
	if err != nil {
		return "", err
	}

	r.logger.Info("RSA encryption succeeded")
	return octet.FormatHex(c), nil
}

// Decrypt computes c^d mod n and strips the padding.
// The plaintext integer is re-padded to the full modulus width before decoding,
// since integer serialization drops the leading zero byte of the block.
func (r *rsaProcessor) Decrypt(privateKey crypto.PrivateKey, ciphertext string) (string, error) {
	if privateKey.IsZero() {
		return "", crypto.Errorf("Decrypt", "%w", crypto.ErrNilKey)
	}

	c, err := octet.ParseHex(ciphertext)
	if err != nil {
		return "", crypto.Errorf("Decrypt", "invalid ciphertext: %w", err)
	}

	n := privateKey.N()
	if c.Cmp(n) >= 0 {
		return "", crypto.Errorf("Decrypt", "%w: ciphertext must be smaller than the modulus", crypto.ErrCiphertextOutOfRange)
	}

	m, err := ModExp(c, privateKey.D(), n)
	if err != nil {
		return "", err
	}

	block, err := octet.LeftPad(m.Bytes(), privateKey.Size())
	if err != nil {
		return "", crypto.Errorf("Decrypt", "failed to restore block width: %w", err)
	}

	plainText, err := r.codec.Decode(block)
	if err != nil {
		return "", err
	}

	r.logger.Info("RSA decryption succeeded")
	return octet.Encode(plainText), nil
}
