package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу ProductRepository.
var _ ports.ProductRepository = (*ProductRepository)(nil)

const productColumns = `id, name, price, old_price, images, image, sizes, colors, details, category,
	COALESCE(label, ''), created_at`

// ProductRepository — каталог на Postgres (pgxpool).
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// List — все товары, новые первыми.
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0, 32)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return products, nil
}

// GetByID — (nil, nil), если товара нет.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByLabel — поиск по человекочитаемой метке из ссылки.
func (r *ProductRepository) GetByLabel(ctx context.Context, label string) (*domain.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE label = $1`, label)
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	if p == nil || p.ID == "" {
		return errors.New("product is empty or id is required")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, name, price, old_price, images, image, sizes, colors, details, category, label, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, productArgs(p)...)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update — полная перезапись карточки; ErrNotFound, если id нет.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	if p == nil || p.ID == "" {
		return errors.New("product is empty or id is required")
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE products SET
			name = $2, price = $3, old_price = $4, images = $5, image = $6, sizes = $7,
			colors = $8, details = $9, category = $10, label = $11, created_at = $12
		WHERE id = $1
	`, productArgs(p)...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, p.ID)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	return nil
}

// ------вспомогательные функции------

func (r *ProductRepository) getOne(ctx context.Context, query string, arg string) (*domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p               domain.Product
		price, oldPrice pgtype.Numeric
	)
	err := row.Scan(&p.ID, &p.Name, &price, &oldPrice, &p.Images, &p.Image, &p.Sizes, &p.Colors,
		&p.Details, &p.Category, &p.Label, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	p.Price = fromNumeric(price)
	p.OldPrice = fromNullableNumeric(oldPrice)
	return &p, nil
}

func productArgs(p *domain.Product) []any {
	var label *string
	if p.Label != "" {
		label = &p.Label
	}
	return []any{
		p.ID, p.Name, toNumeric(p.Price), toNullableNumeric(p.OldPrice),
		nonNil(p.Images), p.Image, nonNil(p.Sizes), nonNil(p.Colors),
		p.Details, p.Category, label, p.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
