package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// handleMessage обрабатывает одно сообщение и решает, коммитить ли оффсет.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.SaveFromMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case isPoison(err):
		// Повтор не поможет: коммитим и идём дальше
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid message key=%s offset=%d: %v (skipped)", string(msg.Key), msg.Offset, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "process failed key=%s offset=%d: %v (will retry without commit)", string(msg.Key), msg.Offset, err)
		return false
	}
}

// isPoison — ошибки данных, а не инфраструктуры.
func isPoison(err error) bool {
	return errors.Is(err, validate.ErrInvalidOrder) ||
		errors.Is(err, validate.ErrInvalidJSON) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrInvalidStatus)
}

func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждёт d или выходит по контексту (false).
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
