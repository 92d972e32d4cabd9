package crypto

// AlgorithmRSA represents the textbook RSA encryption algorithm
const AlgorithmRSA = "RSA"

// DefaultPublicExponent is the public exponent used when none is configured (2^16 + 1)
const DefaultPublicExponent = 65537

// BlockTypeEncryption is the second byte of an encoded block (0x00 || 0x02 || PS || 0x00 || M)
const BlockTypeEncryption = 0x02

// MinPaddingLength is the minimum number of non-zero padding bytes in an encoded block
const MinPaddingLength = 8

// PaddingOverhead is the minimum number of bytes an encoded block adds to a message:
// two prefix bytes, MinPaddingLength padding bytes and one separator byte.
const PaddingOverhead = 2 + MinPaddingLength + 1
