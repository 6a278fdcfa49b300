package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// BuildMessageText — читаемая расшифровка заказа для мессенджера.
func BuildMessageText(form domain.CheckoutForm, items []domain.LineItem, t domain.Totals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "مرحباً، أنا %s\n", form.Name)
	fmt.Fprintf(&b, "رقم الهاتف: %s\n", form.Phone)
	if form.Address != "" {
		fmt.Fprintf(&b, "العنوان: %s\n", form.Address)
	}
	b.WriteString("\nأرغب في طلب المنتجات التالية:\n\n")
	for i := range items {
		li := &items[i]
		if li.Size == "" && li.Color == "" {
			fmt.Fprintf(&b, "- %s × %d\n", li.Name, li.Quantity)
			continue
		}
		fmt.Fprintf(&b, "- %s (مقاس: %s, لون: %s) × %d\n", li.Name, li.Size, li.Color, li.Quantity)
	}
	fmt.Fprintf(&b, "\nالمحافظة: %s", t.RegionName)
	fmt.Fprintf(&b, "\nالشحن: %s %s", shippingText(t), currency)
	fmt.Fprintf(&b, "\nالإجمالي النهائي: %s %s", t.Total.String(), currency)
	return b.String()
}

// MessageLinkURL — deep link вида <base>?text=<urlencoded>.
// Пробелы кодируются как %20: часть клиентов мессенджера показывает "+" буквально.
func MessageLinkURL(base, text string) string {
	return base + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// BuildRelayMessage — тело для form-relay: тема, блок клиента, блок заказа.
func BuildRelayMessage(form domain.CheckoutForm, items []domain.LineItem, t domain.Totals) domain.RelayMessage {
	var details strings.Builder
	details.WriteString("--- تفاصيل الطلب ---\n")
	for i := range items {
		li := &items[i]
		fmt.Fprintf(&details, "- %s (x%d) [%s, %s] = %s %s\n",
			li.Name, li.Quantity, li.Size, li.Color, li.LineTotal().String(), currency)
	}
	fmt.Fprintf(&details, "\nالشحن: %s %s\nالإجمالي: %s %s", shippingText(t), currency, t.Total.String(), currency)

	customer := fmt.Sprintf("اسم العميل: %s\nرقم الهاتف: %s\nالعنوان: %s\nالمحافظة: %s",
		form.Name, form.Phone, form.Address, t.RegionName)

	return domain.RelayMessage{
		Subject:      "طلب جديد من: " + form.Name,
		CustomerData: customer,
		OrderDetails: details.String(),
	}
}

func shippingText(t domain.Totals) string {
	if t.Shipping == nil {
		return "0"
	}
	return t.Shipping.String()
}

// normalize — обрезка пробелов во всех полях формы.
func normalize(f domain.CheckoutForm) domain.CheckoutForm {
	return domain.CheckoutForm{
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Address: strings.TrimSpace(f.Address),
		Region:  strings.TrimSpace(f.Region),
	}
}
