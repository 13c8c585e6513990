package config

// DefaultJWTSecret is the signing key used when no secret is configured.
// It keeps local bootstrap working and is warned about at startup;
// production deployments must set VEICULOS_AUTH_JWT_SECRET.
const DefaultJWTSecret = "minimal-veiculos-dev-signing-key"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs bearer tokens. Falls back to DefaultJWTSecret when
	// unset, matching the original system's behavior.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required"`
}

// UsesFallbackSecret reports whether the configured signing key is the
// built-in development default.
func (c AuthConfig) UsesFallbackSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}
