package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Publisher годится как запись заказов после оформления.
var _ ports.OrderRecorder = (*Publisher)(nil)

// writer — контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — отправляет оформленные заказы в топик; их забирает Consumer back-office.
type Publisher struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewPublisher — DI-конструктор.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	return newPublisher(cfg.Writer(), cfg.Topic, log)
}

func newPublisher(w writer, topic string, log ports.Logger) *Publisher {
	return &Publisher{writer: w, topic: topic, log: log}
}

// Record — сериализует заказ и пишет его с ключом = id заказа.
func (p *Publisher) Record(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}

	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID),
		Value: raw,
		Headers: []kafka.Header{
			{Key: "channel", Value: []byte(order.Channel)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "error").Inc()
		p.log.Warnf(ctx, "publish order failed id=%s topic=%s: %v", order.ID, p.topic, err)
		return fmt.Errorf("publish order %s: %w", order.ID, err)
	}

	metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "ok").Inc()
	p.log.Infof(ctx, "order published id=%s topic=%s", order.ID, p.topic)
	return nil
}

// Close — сбрасывает буферы writer'а.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
