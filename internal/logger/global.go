package logger

import (
	"os"
	"strings"
)

// Global logger instance, shared across packages
var globalLogger *Logger

func init() {
	globalLogger = NewDefault()
	configureFromEnv()
}

// Setup applies the service configuration to the global logger. Called
// from main after config is loaded; the init defaults cover code that
// logs earlier.
func Setup(level, format, environment string) {
	if l, ok := ParseLevel(level); ok {
		globalLogger.SetLevel(l)
	}
	globalLogger.SetFormat(resolveFormat(format, environment))
}

// configureFromEnv configures the global logger from environment variables
func configureFromEnv() {
	if l, ok := ParseLevel(os.Getenv("LOG_LEVEL")); ok {
		globalLogger.SetLevel(l)
	}
	if f := os.Getenv("LOG_FORMAT"); f != "" {
		globalLogger.SetFormat(resolveFormat(f, os.Getenv("ENVIRONMENT")))
	}
}

// ParseLevel parses a log level string
func ParseLevel(level string) (Level, bool) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, true
	case "INFO":
		return INFO, true
	case "WARN", "WARNING":
		return WARN, true
	case "ERROR":
		return ERROR, true
	case "FATAL":
		return FATAL, true
	default:
		return INFO, false
	}
}

// resolveFormat maps a format string to a concrete format; "auto" picks
// text for development and JSON for deployed environments.
func resolveFormat(format, environment string) Format {
	switch strings.ToLower(format) {
	case "json":
		return JSONFormat
	case "text":
		return TextFormat
	default:
		if strings.ToLower(environment) == "development" {
			return TextFormat
		}
		return JSONFormat
	}
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	return globalLogger
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	globalLogger = logger
}

// Global convenience functions that use the global logger

func Debug(message string, fields ...Fields) {
	globalLogger.Debug(message, fields...)
}

func Info(message string, fields ...Fields) {
	globalLogger.Info(message, fields...)
}

func Warn(message string, fields ...Fields) {
	globalLogger.Warn(message, fields...)
}

func Error(message string, err error, fields ...Fields) {
	globalLogger.Error(message, err, fields...)
}

func Fatal(message string, err error, fields ...Fields) {
	globalLogger.Fatal(message, err, fields...)
}

func Debugf(format string, args ...interface{}) {
	globalLogger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	globalLogger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	globalLogger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	globalLogger.Errorf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	globalLogger.Fatalf(format, args...)
}
