package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации заказа.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — теги validator/v10 + сверка сумм.
type OrderValidator struct {
	v *validatorv10.Validate
}

// NewOrderValidator — конструктор OrderValidator.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator {
	v := New()
	v.RegisterStructValidation(orderTotalsValidation, domain.Order{})
	return &OrderValidator{v: v}
}

func (ov *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if err := ov.v.Struct(order); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOrder, describe(err))
	}
	if order.Channel != domain.ChannelCOD && order.Channel != domain.ChannelMessageLink {
		return fmt.Errorf("%w: неизвестный канал %q", ErrInvalidOrder, order.Channel)
	}
	if order.Status != "" && !order.Status.Valid() {
		return fmt.Errorf("%w: неизвестный статус %q", ErrInvalidOrder, order.Status)
	}
	return nil
}

// orderTotalsValidation — subtotal == Σ price*qty, total == subtotal + shipping.
func orderTotalsValidation(sl validatorv10.StructLevel) {
	o := sl.Current().Interface().(domain.Order)

	sum := decimal.Zero
	for i := range o.Items {
		sum = sum.Add(o.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(o.Items[i].Quantity))))
	}
	if !sum.Equal(o.Subtotal) {
		sl.ReportError(o.Subtotal, "subtotal", "Subtotal", "subtotal_match_items", sum.String())
	}
	if !o.Subtotal.Add(o.Shipping).Equal(o.Total) {
		sl.ReportError(o.Total, "total", "Total", "total_match_sum", "")
	}
}
