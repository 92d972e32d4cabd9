// Package cryptoalg defines the contracts of the textbook RSA engine: key derivation,
// padding, encryption and decryption.
package cryptoalg
