package dbcheck

import "time"

// DefaultURL is used when DATABASE_URL is not configured.
const DefaultURL = "postgres://hadi@localhost:5432/mumega_frc"

// Config holds configuration for the database probe.
type Config struct {
	// URL is the connection string, read from DATABASE_URL.
	URL string `mapstructure:"url" default:"postgres://hadi@localhost:5432/mumega_frc"`
	// Ping enables the connectivity probe after resolution.
	Ping bool `mapstructure:"ping" default:"true"`
	// PingTimeout bounds the connectivity probe.
	PingTimeout time.Duration `mapstructure:"ping_timeout" default:"5s"`
}
