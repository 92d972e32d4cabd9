package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrMessageTooLong indicates the message does not fit the padding scheme for the modulus size
	ErrMessageTooLong = errors.New("rsa: message too long")

	// ErrMalformedEncoding indicates a decoded block carries no zero separator
	ErrMalformedEncoding = errors.New("rsa: malformed encoding")

	// ErrNonInvertibleExponent indicates gcd(e, φ(n)) != 1
	ErrNonInvertibleExponent = errors.New("rsa: public exponent is not invertible")

	// ErrInvalidPrime indicates a prime input that cannot form a modulus
	ErrInvalidPrime = errors.New("rsa: invalid prime")

	// ErrInvalidModulus indicates a modulus that is not strictly positive
	ErrInvalidModulus = errors.New("rsa: invalid modulus")

	// ErrNegativeExponent indicates a negative exponent passed to modular exponentiation
	ErrNegativeExponent = errors.New("rsa: negative exponent")

	// ErrCiphertextOutOfRange indicates a ciphertext integer not in [0, n-1]
	ErrCiphertextOutOfRange = errors.New("rsa: ciphertext out of range")

	// ErrNilKey indicates a missing key or key component
	ErrNilKey = errors.New("rsa: key cannot be nil")
)

// Error wraps an underlying error kind with the operation that raised it
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rsa.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a new Error for op. Wrap a sentinel with %w to keep it visible to errors.Is.
func Errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
