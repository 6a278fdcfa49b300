package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// OrderRecorder — приёмник оформленных заказов (Kafka, напрямую в БД или no-op).
type OrderRecorder interface {
	Record(ctx context.Context, order *domain.Order) error
}
