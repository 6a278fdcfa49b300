package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

var (
	_ ports.OrderAdmin    = (*OrderService)(nil)
	_ ports.OrderRecorder = (*OrderService)(nil)
)

const (
	defaultOrdersLimit = 20
	maxOrdersLimit     = 100
)

// OrderService — заказы back-office (без знаний о транспорте).
type OrderService struct {
	repo      ports.OrderRepository // прямой доступ к хранилищу
	log       ports.Logger          // прямой доступ к логгеру
	validator ports.OrderValidator  // прямой доступ к валидатору
	now       func() time.Time
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	log ports.Logger,
	validator ports.OrderValidator,
) *OrderService {
	return &OrderService{
		repo:      repo,
		log:       log,
		validator: validator,
		now:       time.Now,
	}
}

// CreateOrder — проверка и сохранение нового заказа со статусом pending.
func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: order is nil", domain.ErrValidation)
	}
	if order.Status == "" {
		order.Status = domain.StatusPending
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now().UTC()
	}

	if err := s.validator.Validate(ctx, order); err != nil {
		s.log.Warnf(ctx, "validation failed order_id=%s err=%v", order.ID, err)
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.repo.Save(ctx, order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed order_id=%s err=%v", order.ID, err)
		return fmt.Errorf("failed to save order: %w", err)
	}

	s.log.Infof(ctx, "order saved id=%s channel=%s items=%d total=%s",
		order.ID, order.Channel, len(order.Items), order.Total.String())
	return nil
}

// Record — прямой приёмник оформленных заказов (без брокера).
func (s *OrderService) Record(ctx context.Context, order *domain.Order) error {
	return s.CreateOrder(ctx, order)
}

// ListOrders — страница заказов, новые первыми.
func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = defaultOrdersLimit
	}
	if limit > maxOrdersLimit {
		limit = maxOrdersLimit
	}
	if offset < 0 {
		offset = 0
	}

	start := time.Now()
	orders, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.log.Errorf(ctx, "repo.List failed limit=%d offset=%d err=%v", limit, offset, err)
		return nil, err
	}
	s.log.Infof(ctx, "orders listed n=%d limit=%d offset=%d took=%s", len(orders), limit, offset, time.Since(start))
	return orders, nil
}

// UpdateOrderStatus — смена статуса; вне перечисления — ErrInvalidStatus, нет заказа — ErrNotFound.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	st, err := domain.ParseOrderStatus(status)
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: order id is required", domain.ErrValidation)
	}

	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		s.log.Warnf(ctx, "status update failed order_id=%s status=%s err=%v", id, st, err)
		return err
	}
	s.log.Infof(ctx, "order status updated id=%s status=%s", id, st)
	return nil
}

// SaveFromMessage — сохранить заказ, пришедший из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (неизвестные поля и хвост после объекта запрещены);
//  2. доменная валидация (validate.ErrInvalidOrder при проблемах);
//  3. транзакционное сохранение в БД (идемпотентный upsert).
func (s *OrderService) SaveFromMessage(ctx context.Context, raw []byte) error {
	order, err := validate.OrderFromJSON(ctx, s.validator, raw)
	if err != nil {
		s.log.Warnf(ctx, "order message rejected err=%v", err)
		return err
	}
	if order.Status == "" {
		order.Status = domain.StatusPending
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now().UTC()
	}

	if err := s.repo.Save(ctx, order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed order_id=%s err=%v", order.ID, err)
		return fmt.Errorf("failed to save order: %w", err)
	}

	s.log.Infof(ctx, "order saved from message id=%s items=%d", order.ID, len(order.Items))
	return nil
}
