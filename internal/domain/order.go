package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — статус заказа в back-office.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid — входит ли статус в закрытое перечисление.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ParseOrderStatus — нормализует строку и проверяет допустимость.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// Customer — контактные данные покупателя.
type Customer struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address,omitempty"`
}

// OrderItem — позиция оформленного заказа.
type OrderItem struct {
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	UnitPrice decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity  int             `json:"quantity" validate:"min=1"`
}

// Order — заказ, записанный в back-office.
type Order struct {
	ID         string          `json:"id" validate:"required"`
	Customer   Customer        `json:"customer"`
	Region     string          `json:"region" validate:"required"`
	RegionName string          `json:"region_name"`
	Items      []OrderItem     `json:"items" validate:"required,min=1,dive"`
	Subtotal   decimal.Decimal `json:"subtotal" validate:"gte=0"`
	Shipping   decimal.Decimal `json:"shipping" validate:"gte=0"`
	Total      decimal.Decimal `json:"total" validate:"gte=0"`
	Channel    Channel         `json:"channel" validate:"required"`
	Status     OrderStatus     `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// OrderItemsFromCart — перенос позиций корзины в заказ.
func OrderItemsFromCart(items []LineItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for i := range items {
		li := &items[i]
		out = append(out, OrderItem{
			ProductID: li.ProductID,
			Name:      li.Name,
			Size:      li.Size,
			Color:     li.Color,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
		})
	}
	return out
}
