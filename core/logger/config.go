package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info" validate:"omitempty,oneof=debug info warn error"`
	// Format is the encoding of log entries (console, json).
	Format string `mapstructure:"format" default:"console" validate:"omitempty,oneof=console json"`
}
