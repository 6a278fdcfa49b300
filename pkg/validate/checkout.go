package validate

import (
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// Сообщения пользователю (витрина на арабском).
const (
	MsgNameRequired      = "يرجى إدخال الاسم"
	MsgPhoneRequired     = "يرجى إدخال رقم الهاتف"
	MsgRegionRequired    = "يرجى اختيار المحافظة"
	MsgAddressRequired   = "يرجى إدخال العنوان للدفع عند الاستلام"
	MsgCartEmpty         = "سلة التسوق فارغة"
	MsgSelectionRequired = "يرجى اختيار المقاس واللون أولاً"
)

// FieldError — ошибка ввода с сообщением для пользователя.
// Сопоставляется с domain.ErrValidation и, если задана, с причиной Cause.
type FieldError struct {
	Field   string
	Message string
	Cause   error
}

func (e *FieldError) Error() string { return "validation: " + e.Field + ": " + e.Message }

func (e *FieldError) Unwrap() []error {
	if e.Cause != nil {
		return []error{domain.ErrValidation, e.Cause}
	}
	return []error{domain.ErrValidation}
}

type regionLookup interface {
	Region(key string) (domain.Region, error)
}

// CheckoutValidator — шлюз проверки формы перед оформлением.
// Порядок фиксирован, возвращается первая ошибка.
type CheckoutValidator struct {
	regions regionLookup
}

func NewCheckoutValidator(regions regionLookup) *CheckoutValidator {
	return &CheckoutValidator{regions: regions}
}

// Validate — имя, телефон, регион, адрес (только COD), непустая корзина.
// Неизвестный ключ региона возвращается как ErrUnknownRegion.
func (v *CheckoutValidator) Validate(ch domain.Channel, form *domain.CheckoutForm, itemCount int) error {
	if strings.TrimSpace(form.Name) == "" {
		return &FieldError{Field: "name", Message: MsgNameRequired}
	}
	if strings.TrimSpace(form.Phone) == "" {
		return &FieldError{Field: "phone", Message: MsgPhoneRequired}
	}
	if strings.TrimSpace(form.Region) == "" {
		return &FieldError{Field: "region", Message: MsgRegionRequired}
	}
	if _, err := v.regions.Region(strings.TrimSpace(form.Region)); err != nil {
		return err
	}
	if ch == domain.ChannelCOD && strings.TrimSpace(form.Address) == "" {
		return &FieldError{Field: "address", Message: MsgAddressRequired}
	}
	if itemCount == 0 {
		return &FieldError{Field: "cart", Message: MsgCartEmpty, Cause: domain.ErrEmptyCart}
	}
	return nil
}

// ValidateSelection — для товара с вариантами нужно выбрать размер и цвет из предложенных.
func ValidateSelection(p *domain.Product, size, color string) error {
	if len(p.Sizes) > 0 && !p.OffersSize(size) {
		return &FieldError{Field: "size", Message: MsgSelectionRequired}
	}
	if len(p.Colors) > 0 && !p.OffersColor(color) {
		return &FieldError{Field: "color", Message: MsgSelectionRequired}
	}
	return nil
}
