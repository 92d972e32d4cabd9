// Package keys defines the keyring contract: storing, listing, loading
// and deleting derived RSA key pairs by identifier.
package keys
