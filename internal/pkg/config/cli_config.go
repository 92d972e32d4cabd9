package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys,
// e.g. TEXTBOOK_RSA_KEY_PRIME_P
const EnvPrefix = "TEXTBOOK_RSA"

// CLIConfig aggregates the settings consumed by the command-line tool
type CLIConfig struct {
	Logger   LoggerSettings   `mapstructure:"logger"`
	Key      KeySettings      `mapstructure:"key"`
	Database DatabaseSettings `mapstructure:"database"`
}

// Validate validates every section of the configuration
func (c *CLIConfig) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Key.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeCLIConfig loads the configuration from configPath, environment variables and defaults.
// An empty configPath skips the file and relies on defaults and environment only.
func InitializeCLIConfig(configPath string) (*CLIConfig, error) {
	v := viper.New()

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("key.prime_p", DefaultPrimeP)
	v.SetDefault("key.prime_q", DefaultPrimeQ)
	v.SetDefault("key.public_exponent", DefaultPublicExponent)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", DefaultKeyringDSN)
	v.SetDefault("database.name", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
