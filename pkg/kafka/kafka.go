package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const DecisionsTopic = "reservation-decisions"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"DECISIONS_TOPIC" default:"reservation-decisions"`
}

// Enabled reports whether any broker address is configured.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	return sarama.NewAsyncProducer(cfg.Addrs, ProducerConfig())
}

func ProducerConfig() *sarama.Config {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Successes = false
	defaultCfg.Producer.Return.Errors = true
	defaultCfg.Producer.Flush.Frequency = 500 * time.Millisecond
	return defaultCfg
}
