package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — параметры чтения топика заказов.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first | last

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// ReaderConfig — конфиг kafka.Reader с ручным коммитом оффсетов.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}

// PublisherConfig — параметры записи заказов в топик.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	RequiredAcks string // none | one | all
}

// Writer — kafka.Writer с балансировкой по ключу (id заказа).
func (c *PublisherConfig) Writer() *kafka.Writer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
	}
	if c.WriteTimeout > 0 {
		w.WriteTimeout = c.WriteTimeout
	}

	switch strings.ToLower(strings.TrimSpace(c.RequiredAcks)) {
	case "none":
		w.RequiredAcks = kafka.RequireNone
	case "all":
		w.RequiredAcks = kafka.RequireAll
	}
	return w
}
