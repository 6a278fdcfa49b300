package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// ProductRepository — доступ к каталогу. Get* возвращают (nil, nil), если записи нет.
type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByLabel(ctx context.Context, label string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}
