package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"storefront.events"`
}

// Enabled reports whether any broker is configured.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	return sarama.NewAsyncProducer(cfg.Addrs, AsyncConfig())
}

// AsyncConfig is the producer config used for fire-and-forget events.
// Successes are not returned; errors must be drained by the caller.
func AsyncConfig() *sarama.Config {
	c := sarama.NewConfig()
	c.Producer.RequiredAcks = sarama.WaitForLocal
	c.Producer.Return.Successes = false
	c.Producer.Return.Errors = true
	c.Producer.Flush.Frequency = 500 * time.Millisecond
	return c
}
