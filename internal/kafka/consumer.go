package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader, подменяется моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageSaver — бизнес-логика, которая разбирает, проверяет и сохраняет заказ из сообщения.
type messageSaver interface {
	SaveFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — читатель топика заказов для back-office.
type Consumer struct {
	reader         reader
	service        messageSaver
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer — конструктор. ReaderConfig() настроен на ручной коммит оффсетов.
func NewConsumer(cfg *ConsumerConfig, service messageSaver, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg, service, log)
}

func newConsumer(r reader, cfg *ConsumerConfig, service messageSaver, log ports.Logger) *Consumer {
	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}
	rInit := cfg.RetryInitial
	if rInit <= 0 {
		rInit = time.Second
	}
	rMax := cfg.RetryMax
	if rMax <= 0 {
		rMax = 30 * time.Second
	}
	if rMax < rInit {
		rMax = rInit
	}

	return &Consumer{
		reader:         r,
		service:        service,
		log:            log,
		processTimeout: pt,
		retryInitial:   rInit,
		retryMax:       rMax,
		jitterRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — основной цикл:
// 1) читаем сообщение без авто-коммита;
// 2) успешная обработка → CommitMessages;
// 3) битый JSON или невалидный заказ → лог и CommitMessages (пропускаем навсегда);
// 4) временная ошибка → без коммита (at-least-once).
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "orders consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial

	for {
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.handleMessage(ctx, rc.Topic, &msg) {
			c.commitSafely(ctx, &msg)
			continue
		}
		// Пауза после временной ошибки, чтобы не долбить БД.
		_ = c.sleepWithBackoff(ctx, c.withJitterEqual(minDuration(c.retryInitial, 500*time.Millisecond)))
	}
}

// Close — закрывает reader, повторные вызовы безопасны.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
