package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// FormRelay — внешний сервис, пересылающий форму заказа владельцу магазина.
type FormRelay interface {
	Submit(ctx context.Context, msg domain.RelayMessage) error
}
