//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeProduct — мини-генератор товара каталога.
func MakeProduct(opts ...func(*domain.Product)) domain.Product {
	p := domain.Product{
		ID:        "p-" + UniqSuffix(),
		Name:      "فستان سهرة " + UniqSuffix(),
		Price:     decimal.NewFromInt(450),
		Images:    []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		Sizes:     []string{"S", "M", "L"},
		Colors:    []string{"أسود", "أحمر"},
		Details:   "خامة ممتازة",
		Category:  "فساتين",
		Label:     "dress-" + UniqSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, fn := range opts {
		fn(&p)
	}
	return p
}

func WithCategory(c string) func(*domain.Product) {
	return func(p *domain.Product) { p.Category = c }
}

// MakeOrder — валидный COD-заказ на две позиции, доставка в Каир.
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)
	o := domain.Order{
		ID: "ord-" + UniqSuffix(),
		Customer: domain.Customer{
			Name:    "سارة",
			Phone:   "01000000000",
			Address: "شارع التحرير 1",
		},
		Region:     "cairo",
		RegionName: "القاهرة",
		Items: []domain.OrderItem{
			{ProductID: "p-1", Name: "فستان", Size: "M", Color: "أسود", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
			{ProductID: "p-2", Name: "حجاب", UnitPrice: decimal.NewFromInt(50), Quantity: 1},
		},
		Subtotal:  decimal.NewFromInt(250),
		Shipping:  decimal.NewFromInt(50),
		Total:     decimal.NewFromInt(300),
		Channel:   domain.ChannelCOD,
		Status:    domain.StatusPending,
		CreatedAt: now,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithOrderID(id string) func(*domain.Order) {
	return func(o *domain.Order) { o.ID = id }
}

func WithCreatedAt(t time.Time) func(*domain.Order) {
	return func(o *domain.Order) { o.CreatedAt = t }
}
