package cryptography

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/octet"
)

// maxZeroRedraws bounds the redraws of a single padding byte. A uniform source exceeds it
// with probability 256^-64, so hitting it means the source is broken.
const maxZeroRedraws = 64

var errZeroRandomBytes = errors.New("random source keeps returning zero bytes")

// pkcs1Codec implements the PaddingCodec interface for 0x00 || 0x02 || PS || 0x00 || M blocks
type pkcs1Codec struct {
	random io.Reader
}

// Compile-time check that pkcs1Codec implements cryptoalg.PaddingCodec
var _ cryptoalg.PaddingCodec = (*pkcs1Codec)(nil)

// NewPKCS1Codec creates a codec drawing padding bytes from random.
// A nil reader selects crypto/rand.Reader.
func NewPKCS1Codec(random io.Reader) cryptoalg.PaddingCodec {
	if random == nil {
		random = rand.Reader
	}
	return &pkcs1Codec{random: random}
}

// Encode pads message to the byte length of modulus.
func (c *pkcs1Codec) Encode(message []byte, modulus *big.Int) ([]byte, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, crypto.Errorf("Encode", "%w: modulus must be positive", crypto.ErrInvalidModulus)
	}

	k := octet.ByteLen(modulus)
	if len(message) > k-crypto.PaddingOverhead {
		return nil, crypto.Errorf("Encode", "%w: %d bytes exceeds the %d byte limit of a %d byte modulus",
			crypto.ErrMessageTooLong, len(message), max(k-crypto.PaddingOverhead, 0), k)
	}

	block := make([]byte, k)
	block[0] = 0x00
	block[1] = crypto.BlockTypeEncryption

	ps := block[2 : k-len(message)-1]
	if err := c.nonZeroRandomBytes(ps); err != nil {
		return nil, crypto.Errorf("Encode", "failed to read padding bytes: %w", err)
	}

	block[k-len(message)-1] = 0x00
	copy(block[k-len(message):], message)

	return block, nil
}

// Decode strips the padding. Only the separator is searched for; the 0x00 0x02 prefix is
// not verified.
func (c *pkcs1Codec) Decode(block []byte) ([]byte, error) {
	if len(block) < 3 {
		return nil, crypto.Errorf("Decode", "%w: block of %d bytes is too short", crypto.ErrMalformedEncoding, len(block))
	}

	for i := 2; i < len(block); i++ {
		if block[i] == 0x00 {
			message := make([]byte, len(block)-i-1)
			copy(message, block[i+1:])
			return message, nil
		}
	}

	return nil, crypto.Errorf("Decode", "%w: no zero separator found", crypto.ErrMalformedEncoding)
}

// nonZeroRandomBytes fills s with bytes drawn uniformly from [1, 255].
// Zero bytes are redrawn rather than remapped to keep the distribution uniform.
func (c *pkcs1Codec) nonZeroRandomBytes(s []byte) error {
	if _, err := io.ReadFull(c.random, s); err != nil {
		return err
	}

	for i := range s {
		for redraws := 0; s[i] == 0; redraws++ {
			if redraws == maxZeroRedraws {
				return errZeroRandomBytes
			}
			if _, err := io.ReadFull(c.random, s[i:i+1]); err != nil {
				return err
			}
		}
	}

	return nil
}
