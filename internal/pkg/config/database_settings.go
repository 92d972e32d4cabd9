package config

// Supported keyring database types
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// DefaultKeyringDSN is the SQLite file used when no DSN is configured
const DefaultKeyringDSN = "textbook-rsa.db"

// DatabaseSettings holds the keyring database connection settings.
// Name is only used for postgres, where the database is created on first connect.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	Name string `mapstructure:"name"`
}

// Validate checks the database type and DSN
func (s *DatabaseSettings) Validate() error {
	return validateStruct("DatabaseSettings", s)
}
