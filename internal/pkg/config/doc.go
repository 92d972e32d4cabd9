// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file and TEXTBOOK_RSA_* environment variables,
// validated, and handed to the logger, the RSA key derivation and the keyring database.
package config
