package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}

type ProductValidator interface {
	ValidateProduct(ctx context.Context, p *domain.Product) error
}
