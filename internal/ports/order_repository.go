package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	List(ctx context.Context, limit, offset int) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
