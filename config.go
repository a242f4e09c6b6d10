package sslify

import "github.com/pkg/errors"

// YearInSeconds is the default HSTS max-age.
const YearInSeconds = 31536000

// Config configures an Enforcer. It is read-only once passed to New.
//
// The zero value is not the default configuration; start from DefaultConfig
// or decode it from the environment with envdecode.
type Config struct {
	// MaxAge is the HSTS max-age directive, in seconds.
	MaxAge int `env:"SSLIFY_HSTS_MAX_AGE,default=31536000"`

	// IncludeSubdomains appends the includeSubDomains directive.
	IncludeSubdomains bool `env:"SSLIFY_HSTS_INCLUDE_SUBDOMAINS,default=false"`

	// Permanent redirects with 301 instead of 302.
	Permanent bool `env:"SSLIFY_PERMANENT_REDIRECT,default=false"`

	// UseSSL gates the middleware entirely. When false, Middleware returns the
	// wrapped handler untouched.
	UseSSL bool `env:"USE_SSL,default=true"`
}

// DefaultConfig returns the default configuration: one year max-age, no
// subdomains, temporary redirects, enabled.
func DefaultConfig() Config {
	return Config{
		MaxAge: YearInSeconds,
		UseSSL: true,
	}
}

// Validate reports whether cfg can produce a well-formed HSTS header.
func (cfg Config) Validate() error {
	if cfg.MaxAge < 0 {
		return errors.Errorf("sslify: negative HSTS max-age %d", cfg.MaxAge)
	}
	return nil
}
