package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// OrderAdmin — back-office: просмотр заказов и смена статуса.
type OrderAdmin interface {
	ListOrders(ctx context.Context, limit, offset int) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status string) error
}
