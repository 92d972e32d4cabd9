// Package persistence provides the keyring: a GORM-backed repository of
// derived RSA key pairs stored in SQLite or PostgreSQL.
package persistence
