// Package svclog provides logging facilities for the sslify front process.
package svclog

import (
	"github.com/sirupsen/logrus"
)

// Config for logger.
type Config struct {
	AppName  string `env:"APP_NAME,default=sslify"`
	Dyno     string `env:"DYNO"`
	LogLevel string `env:"LOG_LEVEL,default=info"`
}

// NewLogger returns a new logger that includes the app name, and the dyno
// when set, in each log line.
//
// An unparseable LOG_LEVEL leaves the global level untouched.
func NewLogger(cfg Config) logrus.FieldLogger {
	logger := logrus.WithField("app", cfg.AppName)
	if cfg.Dyno != "" {
		logger = logger.WithField("dyno", cfg.Dyno)
	}

	if l, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(l)
	}
	return logger
}
