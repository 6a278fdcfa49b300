package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// CatalogReader — витрина: чтение каталога.
type CatalogReader interface {
	Products(ctx context.Context, category string) ([]*domain.Product, error)
	ProductByID(ctx context.Context, id string) (*domain.Product, error)
	ProductByLabel(ctx context.Context, label string) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// CatalogWriter — админка: изменение каталога.
type CatalogWriter interface {
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
