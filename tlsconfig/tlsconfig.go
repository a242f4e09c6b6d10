// Package tlsconfig provides the TLS configuration sslify terminates with,
// following the Mozilla "modern" recommendations.
//
// See https://wiki.mozilla.org/Security/Server_Side_TLS
package tlsconfig

import (
	"crypto/tls"

	"github.com/pkg/errors"
)

// ModernCiphers provides the highest level of security for modern devices.
// They only apply to TLS 1.2; TLS 1.3 suites are not configurable.
var ModernCiphers = []uint16{
	tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,  // 0xcca9
	tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,    // 0xcca8
	tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256, // 0xc02b
	tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,   // 0xc02f
	tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384, // 0xc02c
	tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,   // 0xc030
}

// New returns a TLS configuration with TLS 1.2 as the floor.
func New() *tls.Config {
	return &tls.Config{
		// Only use curves that have assembly implementations.
		CurvePreferences: []tls.CurveID{
			tls.X25519,
			tls.CurveP256,
		},
		MinVersion:   tls.VersionTLS12,
		CipherSuites: ModernCiphers,
	}
}

// NewWithKeyPair returns New with the given PEM encoded certificate chain
// and private key installed.
func NewWithKeyPair(certPEM, keyPEM []byte) (*tls.Config, error) {
	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, errors.Wrap(err, "decoding TLS certificate")
	}

	cfg := New()
	cfg.Certificates = []tls.Certificate{cert}
	return cfg, nil
}
