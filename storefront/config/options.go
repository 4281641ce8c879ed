package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(cfg *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(cfg *Config) {
		cfg.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.Server.WriteTimeout = timeout
	}
}

// WithSecureCookie overrides SESSION_SECURE, e.g. for plain-http local runs.
func WithSecureCookie(secure bool) Option {
	return func(cfg *Config) {
		cfg.Session.Secure = secure
	}
}
