package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	validatorv10 "github.com/go-playground/validator/v10"
)

var _ ports.ProductValidator = (*ProductValidator)(nil)

// ErrInvalidProduct — некорректная карточка товара из админки.
var ErrInvalidProduct = errors.New("product validation failed")

type ProductValidator struct {
	v *validatorv10.Validate
}

func NewProductValidator() *ProductValidator {
	return &ProductValidator{v: New()}
}

func (pv *ProductValidator) ValidateProduct(_ context.Context, p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("%w: product is nil", ErrInvalidProduct)
	}
	if err := pv.v.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProduct, describe(err))
	}
	return nil
}
