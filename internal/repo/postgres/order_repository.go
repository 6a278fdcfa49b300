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

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — заказы back-office на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Save — транзакционный идемпотентный upsert заказа с полной заменой позиций.
// Статус существующего заказа не перезаписывается: им управляет админка.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}
	status := order.Status
	if status == "" {
		status = domain.StatusPending
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO orders (
			id, customer_name, customer_phone, customer_address, region, region_name,
			subtotal, shipping, total, channel, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			customer_phone = EXCLUDED.customer_phone,
			customer_address = EXCLUDED.customer_address,
			region = EXCLUDED.region,
			region_name = EXCLUDED.region_name,
			subtotal = EXCLUDED.subtotal,
			shipping = EXCLUDED.shipping,
			total = EXCLUDED.total,
			channel = EXCLUDED.channel
	`,
		order.ID, order.Customer.Name, order.Customer.Phone, order.Customer.Address, order.Region, order.RegionName,
		toNumeric(order.Subtotal), toNumeric(order.Shipping), toNumeric(order.Total),
		string(order.Channel), string(status), order.CreatedAt,
	); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	if len(order.Items) > 0 {
		if err = copyItems(ctx, tx, order.ID, order.Items); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// List — страница заказов, новые первыми. Два запроса: базовые записи и позиции по ANY.
func (r *OrderRepository) List(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_name, customer_phone, customer_address, region, region_name,
			subtotal, shipping, total, channel, status, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, limit)
	byID := make(map[string]*domain.Order, limit)
	ids := make([]string, 0, limit)
	for rows.Next() {
		var (
			o                         domain.Order
			channel, status           string
			subtotal, shipping, total pgtype.Numeric
		)
		if err := rows.Scan(
			&o.ID, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Address, &o.Region, &o.RegionName,
			&subtotal, &shipping, &total, &channel, &status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Subtotal, o.Shipping, o.Total = fromNumeric(subtotal), fromNumeric(shipping), fromNumeric(total)
		o.Channel, o.Status = domain.Channel(channel), domain.OrderStatus(status)
		orders = append(orders, &o)
		byID[o.ID] = &o
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil // пустая страница
	}

	iRows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id, name, size, color, price, quantity
		FROM order_items
		WHERE order_id = ANY($1::text[])
		ORDER BY order_id, position
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer iRows.Close()

	for iRows.Next() {
		var (
			orderID string
			item    domain.OrderItem
			price   pgtype.Numeric
		)
		if err := iRows.Scan(&orderID, &item.ProductID, &item.Name, &item.Size, &item.Color, &price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.UnitPrice = fromNumeric(price)
		if o := byID[orderID]; o != nil {
			o.Items = append(o.Items, item)
		}
	}
	if err := iRows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}
	return orders, nil
}

// UpdateStatus — ErrNotFound, если заказа нет.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}
	return nil
}

// copyItems — вставка позиций через COPY (CopyFromRows).
func copyItems(ctx context.Context, tx pgx.Tx, orderID string, items []domain.OrderItem) error {
	rows := make([][]any, 0, len(items))
	for i := range items {
		it := &items[i]
		rows = append(rows, []any{orderID, int32(i), it.ProductID, it.Name, it.Size, it.Color,
			toNumeric(it.UnitPrice), int32(it.Quantity)})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "position", "product_id", "name", "size", "color", "price", "quantity"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy items: %w", err)
	}
	return nil
}
