// Package https runs the plaintext and TLS listeners of the sslify front
// process.
package https

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	proxyproto "github.com/armon/go-proxyproto"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/acme/autocert"

	"github.com/heroku/sslify/cmdutil"
	"github.com/heroku/sslify/tlsconfig"
)

// listenHook allows tests to intercept the listeners, e.g., to get the
// resolved address when the server's Addr is `:0`.
var listenHook chan net.Listener

// New returns a cmdutil.Server running handler on the listeners cfg
// describes.
func New(l logrus.FieldLogger, handler http.Handler, cfg Config) (cmdutil.Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		plain     = handler
		tlsConfig *tls.Config
		srvs      []cmdutil.Server
	)

	if cfg.SecurePort != 0 {
		if cfg.UseAutocert {
			am := &autocert.Manager{
				Prompt: autocert.AcceptTOS,
			}
			if len(cfg.AutocertHosts) > 0 {
				am.HostPolicy = autocert.HostWhitelist(cfg.AutocertHosts...)
			}
			if cfg.AutocertCacheDir != "" {
				am.Cache = autocert.DirCache(cfg.AutocertCacheDir)
			}

			tlsConfig = tlsconfig.New()
			tlsConfig.GetCertificate = am.GetCertificate
			plain = am.HTTPHandler(handler)
		} else {
			var err error
			tlsConfig, err = tlsconfig.NewWithKeyPair([]byte(cfg.ServerCert), []byte(cfg.ServerKey))
			if err != nil {
				return nil, err
			}
		}

		srvs = append(srvs, serve(l, cfg, &http.Server{
			Handler:   handler,
			Addr:      fmt.Sprintf(":%d", cfg.SecurePort),
			TLSConfig: tlsConfig,
		}))
	}

	if cfg.Port != 0 {
		srvs = append(srvs, serve(l, cfg, &http.Server{
			Handler: plain,
			Addr:    fmt.Sprintf(":%d", cfg.Port),
		}))
	}

	return cmdutil.MultiServer(srvs...), nil
}

// serve adapts an http.Server to a cmdutil.Server. It terminates TLS if
// TLSConfig is set on srv.
func serve(l logrus.FieldLogger, cfg Config, srv *http.Server) cmdutil.Server {
	srv.ReadTimeout = cfg.ReadTimeout
	srv.WriteTimeout = cfg.WriteTimeout

	return cmdutil.ServerFuncs{
		RunFunc: func() error {
			l.WithFields(logrus.Fields{
				"at":   "binding",
				"addr": srv.Addr,
				"tls":  srv.TLSConfig != nil,
			}).Info()

			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return errors.Wrap(err, "listening to tcp addr")
			}
			defer ln.Close()

			if listenHook != nil {
				listenHook <- ln
			}

			if cfg.ProxyProtocol {
				ln = &proxyproto.Listener{Listener: ln}
			}

			if srv.TLSConfig != nil {
				err = srv.ServeTLS(ln, "", "")
			} else {
				err = srv.Serve(ln)
			}
			if err == http.ErrServerClosed {
				return nil
			}
			return errors.Wrap(err, "serve")
		},
		StopFunc: func(error) { gracefulShutdown(l, srv) },
	}
}

func gracefulShutdown(l logrus.FieldLogger, s *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	l.WithField("at", "graceful-shutdown").Info()
	if err := s.Shutdown(ctx); err != nil {
		l.WithField("at", "graceful-shutdown").WithError(err).Warn()
		s.Close()
	}
}
