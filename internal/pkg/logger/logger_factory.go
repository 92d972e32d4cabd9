package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
)

var (
	mu       sync.Mutex
	instance Logger
)

// levels maps configured level names onto slog levels; critical has no slog counterpart
var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger builds the process-wide logger from settings.
// Once a logger exists later calls are no-ops; a failed call leaves room for another attempt.
func InitLogger(settings *config.LoggerSettings) error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return nil
	}
	if settings == nil {
		return fmt.Errorf("logger settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if settings.LogType == config.LogTypeFile {
		instance = NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge)
	} else {
		instance = NewConsoleLogger(settings.LogLevel)
	}
	return nil
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return instance, nil
}

// levelOf falls back to info for names the settings validator would reject
func levelOf(name string) slog.Level {
	if level, ok := levels[name]; ok {
		return level
	}
	return slog.LevelInfo
}
