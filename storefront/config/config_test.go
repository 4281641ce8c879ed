package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/bookstore-storefront/storefront/config"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://backend.test:5000")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("SESSION_SECRET", "s3cr3t")

	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
		config.WithSecureCookie(false),
	)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, "http://backend.test:5000", cfg.API.BaseURL)
	require.Equal(t, time.Hour, cfg.Session.TTL)
	require.False(t, cfg.Session.Secure)
	require.Equal(t, "s3cr3t", cfg.Session.Secret)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Addrs)
	require.True(t, cfg.Kafka.Enabled())
	require.Equal(t, "storefront.events", cfg.Kafka.Topic)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)

	// loaded once per process
	require.Equal(t, cfg, config.NewConfig())
}
