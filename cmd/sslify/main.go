// Command sslify is a reverse proxy that enforces https in front of an
// application: plaintext requests are redirected and responses served over
// TLS carry a Strict-Transport-Security header.
//
// It is configured entirely from the environment; UPSTREAM_URL is required.
package main

import (
	"syscall"

	"github.com/joeshaw/envdecode"

	"github.com/heroku/sslify/cmdutil"
	"github.com/heroku/sslify/cmdutil/https"
	"github.com/heroku/sslify/cmdutil/signals"
	"github.com/heroku/sslify/cmdutil/svclog"
)

func main() {
	var cfg config
	envdecode.MustStrictDecode(&cfg)

	logger := svclog.NewLogger(cfg.Logger)

	h, err := newHandler(logger, cfg)
	if err != nil {
		logger.WithError(err).Fatal("configuring handler")
	}

	srv, err := https.New(logger, h, cfg.HTTPS)
	if err != nil {
		logger.WithError(err).Fatal("configuring listeners")
	}

	ms := cmdutil.MultiServer(
		srv,
		signals.NewServer(logger, syscall.SIGINT, syscall.SIGTERM),
	)
	if err := ms.Run(); err != nil {
		logger.WithError(err).Fatal()
	}
}
