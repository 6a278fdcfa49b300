package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/shopspring/decimal"
)

func validOrder() *domain.Order {
	return &domain.Order{
		ID:       "ord-1",
		Customer: domain.Customer{Name: "Sara", Phone: "0100", Address: "Tahrir 1"},
		Region:   "cairo",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Shirt", Size: "M", Color: "Red", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
			{ProductID: "p1", Name: "Shirt", Size: "L", Color: "Red", UnitPrice: decimal.NewFromInt(100), Quantity: 1},
		},
		Subtotal:  decimal.NewFromInt(300),
		Shipping:  decimal.NewFromInt(50),
		Total:     decimal.NewFromInt(350),
		Channel:   domain.ChannelCOD,
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestOrderValidator_Validate(t *testing.T) {
	v := validate.NewOrderValidator()
	ctx := context.Background()

	t.Run("valid order", func(t *testing.T) {
		if err := v.Validate(ctx, validOrder()); err != nil {
			t.Fatalf("expected valid order, got: %v", err)
		}
	})

	cases := []struct {
		name      string
		makeOrder func() *domain.Order
		msg       string
	}{
		{"nil order", func() *domain.Order { return nil }, "заказ не может быть nil"},
		{"empty id", func() *domain.Order { o := validOrder(); o.ID = ""; return o }, "Order.ID"},
		{"empty customer name", func() *domain.Order { o := validOrder(); o.Customer.Name = ""; return o }, "Order.Customer.Name"},
		{"empty items", func() *domain.Order { o := validOrder(); o.Items = nil; return o }, "Order.Items"},
		{"zero quantity", func() *domain.Order { o := validOrder(); o.Items[0].Quantity = 0; return o }, "Order.Items[0].Quantity"},
		{"negative price", func() *domain.Order {
			o := validOrder()
			o.Items[1].UnitPrice = decimal.NewFromInt(-1)
			return o
		}, "Order.Items[1].UnitPrice"},
		{"subtotal mismatch", func() *domain.Order { o := validOrder(); o.Subtotal = decimal.NewFromInt(299); return o }, "subtotal_match_items"},
		{"total mismatch", func() *domain.Order { o := validOrder(); o.Total = decimal.NewFromInt(300); return o }, "total_match_sum"},
		{"unknown channel", func() *domain.Order { o := validOrder(); o.Channel = "fax"; return o }, "неизвестный канал"},
		{"unknown status", func() *domain.Order { o := validOrder(); o.Status = "lost"; return o }, "неизвестный статус"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.makeOrder())
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, validate.ErrInvalidOrder) {
				t.Errorf("expected ErrInvalidOrder, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("expected message containing %q, got %q", tc.msg, err.Error())
			}
		})
	}
}

func TestProductValidator(t *testing.T) {
	v := validate.NewProductValidator()
	ctx := context.Background()

	old := decimal.NewFromInt(500)
	ok := &domain.Product{Name: "Dress", Price: decimal.NewFromInt(450), OldPrice: &old, Category: "dresses", Sizes: []string{"S"}}
	if err := v.ValidateProduct(ctx, ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []*domain.Product{
		nil,
		{Price: decimal.NewFromInt(1), Category: "c"},
		{Name: "x", Price: decimal.NewFromInt(-1), Category: "c"},
		{Name: "x", Price: decimal.NewFromInt(1)},
		{Name: "x", Price: decimal.NewFromInt(1), Category: "c", Sizes: []string{""}},
	}
	for i, p := range bad {
		if err := v.ValidateProduct(ctx, p); !errors.Is(err, validate.ErrInvalidProduct) {
			t.Fatalf("case %d: want ErrInvalidProduct, got %v", i, err)
		}
	}
}
