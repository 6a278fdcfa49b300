package domain

import "github.com/shopspring/decimal"

// Channel — канал оформления заказа.
type Channel string

const (
	ChannelMessageLink Channel = "whatsapp"
	ChannelCOD         Channel = "cod"
)

// CheckoutForm — данные покупателя из формы корзины.
type CheckoutForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Region  string `json:"region"`
}

// SubmitState — состояние кнопки отправки заказа.
type SubmitState string

const (
	SubmitIdle       SubmitState = "idle"
	SubmitSubmitting SubmitState = "submitting"
)

// RelayMessage — тело, уходящее во внешний form-relay (e-mail шлюз).
type RelayMessage struct {
	Subject      string
	CustomerData string
	OrderDetails string
}

// Receipt — результат успешного COD-оформления.
type Receipt struct {
	OrderID  string          `json:"order_id"`
	Total    decimal.Decimal `json:"total"`
	Redirect string          `json:"redirect"`
}
