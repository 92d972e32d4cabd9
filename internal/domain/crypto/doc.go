// Package crypto defines the core structures shared by the textbook RSA engine,
// such as key pairs and their public and private views, together with the error kinds
// raised by key derivation, padding and encryption.
package crypto
