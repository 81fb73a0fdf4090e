package catalog

import "time"

// Config holds configuration for fetching a catalog.
type Config struct {
	// TimeoutSeconds bounds the whole fetch, whatever the source.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with HTTP requests.
	UserAgent string `mapstructure:"user_agent" default:"itemgen"`
	// MaxBytes caps the size of a fetched document.
	MaxBytes int64 `mapstructure:"max_bytes" default:"67108864"`
}

// Timeout returns the fetch timeout, defaulting to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) maxBytes() int64 {
	if c.MaxBytes <= 0 {
		return 64 << 20
	}
	return c.MaxBytes
}
