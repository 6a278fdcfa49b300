package notify

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/ports"
)

// DismissAfter — время показа уведомления на клиенте.
const DismissAfter = 3 * time.Second

var _ ports.Notifier = (*Sink)(nil)

// Toast — уведомление, возвращаемое клиенту вместе с ответом.
type Toast struct {
	Message        string `json:"message"`
	DismissAfterMs int64  `json:"dismissAfterMs"`
}

type collector struct {
	mu     sync.Mutex
	toasts []Toast
}

type ctxKey struct{}

// WithCollector — привязывает к контексту запроса буфер уведомлений.
func WithCollector(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, &collector{})
}

// Collected — уведомления, накопленные в контексте (в порядке поступления).
func Collected(ctx context.Context) []Toast {
	c, ok := ctx.Value(ctxKey{}).(*collector)
	if !ok {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Toast(nil), c.toasts...)
}

// Sink — Notifier поверх буфера запроса; вне запроса сообщения только логируются.
type Sink struct {
	log ports.Logger
}

func NewSink(log ports.Logger) *Sink { return &Sink{log: log} }

func (s *Sink) Notify(ctx context.Context, message string) {
	c, ok := ctx.Value(ctxKey{}).(*collector)
	if !ok {
		s.log.Infof(ctx, "notification without request scope: %s", message)
		return
	}
	c.mu.Lock()
	c.toasts = append(c.toasts, Toast{Message: message, DismissAfterMs: DismissAfter.Milliseconds()})
	c.mu.Unlock()
}
