package octet

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrInvalidOctetString indicates a string that is not an uppercase, even-length hex octet string
	ErrInvalidOctetString = errors.New("octet: invalid octet string")

	// ErrInvalidInteger indicates a string that is not a decimal integer
	ErrInvalidInteger = errors.New("octet: invalid integer")
)

// Decode parses an octet string into bytes.
// The empty string decodes to an empty message.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidOctetString, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrInvalidOctetString, c, i)
		}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOctetString, err)
	}
	return b, nil
}

// Encode renders bytes as an octet string
func Encode(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// ParseHex parses an octet string as a big-endian non-negative integer
func ParseHex(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidOctetString)
	}
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// FormatHex renders a non-negative integer as its minimal octet string.
// Zero renders as "00".
func FormatHex(x *big.Int) string {
	if x.Sign() == 0 {
		return "00"
	}
	return Encode(x.Bytes())
}

// ParseDecimal parses a base-10 integer
func ParseDecimal(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInteger, s)
	}
	return x, nil
}

// ByteLen returns the number of bytes needed to hold the magnitude of x.
// Zero has a byte length of 0.
func ByteLen(x *big.Int) int {
	return (x.BitLen() + 7) / 8
}

// LeftPad prepends zero bytes so that the result is exactly size bytes long
func LeftPad(b []byte, size int) ([]byte, error) {
	if len(b) > size {
		return nil, fmt.Errorf("cannot pad %d bytes to %d", len(b), size)
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out, nil
}
