package https

import (
	"time"

	"github.com/pkg/errors"
)

// Config for the plaintext and TLS listeners.
type Config struct {
	// Port receives plaintext traffic, which is redirected or refused. Zero
	// disables the plaintext listener.
	Port int `env:"PORT,default=5000"`

	// SecurePort terminates TLS when set.
	SecurePort int `env:"SECURE_PORT"`

	// PEM encoded certificate and key for SecurePort.
	ServerCert string `env:"SERVER_CERT"`
	ServerKey  string `env:"SERVER_KEY"`

	// UseAutocert obtains certificates from Let's Encrypt instead. The
	// plaintext listener then also answers ACME http-01 challenges.
	UseAutocert      bool     `env:"HTTPS_USE_AUTOCERT"`
	AutocertHosts    []string `env:"AUTOCERT_HOSTS"`
	AutocertCacheDir string   `env:"AUTOCERT_CACHE_DIR"`

	// ProxyProtocol expects connections to start with a PROXY protocol
	// header, as sent by an ELB in TCP mode.
	ProxyProtocol bool `env:"PROXY_PROTOCOL"`

	ReadTimeout  time.Duration `env:"HTTP_SERVER_READ_TIMEOUT,default=60s"`
	WriteTimeout time.Duration `env:"HTTP_SERVER_WRITE_TIMEOUT,default=60s"`
}

// Validate checks that cfg describes at least one listener and that the TLS
// listener has a certificate source.
func (cfg Config) Validate() error {
	if cfg.Port == 0 && cfg.SecurePort == 0 {
		return errors.New("https: one of PORT or SECURE_PORT is required")
	}
	if cfg.SecurePort != 0 && !cfg.UseAutocert && (cfg.ServerCert == "" || cfg.ServerKey == "") {
		return errors.New("https: SECURE_PORT needs SERVER_CERT and SERVER_KEY, or HTTPS_USE_AUTOCERT")
	}
	return nil
}
