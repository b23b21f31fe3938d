package config

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Site   SiteConfig   `mapstructure:"site"   validate:"required"`
}

// SiteConfig contains settings describing the public site the content is
// served under.
type SiteConfig struct {
	// BaseURL is the absolute origin used when generating sitemap entries.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// ShutdownTimeoutSeconds bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}
