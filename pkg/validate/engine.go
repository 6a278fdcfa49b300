package validate

import (
	"reflect"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New — validator/v10 с поддержкой decimal.Decimal (сравнения gte/lte работают по числу).
func New() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return v
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

// describe — первая ошибка validator/v10 в виде "Namespace: tag".
func describe(err error) string {
	if ve, ok := err.(validatorv10.ValidationErrors); ok && len(ve) > 0 {
		fe := ve[0]
		if fe.Param() != "" {
			return fe.Namespace() + ": " + fe.Tag() + "=" + fe.Param()
		}
		return fe.Namespace() + ": " + fe.Tag()
	}
	return err.Error()
}
