package domain

import "github.com/shopspring/decimal"

// Region — ключ тарифа доставки (губерния) с фиксированной стоимостью.
type Region struct {
	Key  string          `json:"key"`
	Name string          `json:"name"`
	Fee  decimal.Decimal `json:"fee"`
}

// Totals — производные суммы корзины для отображения.
// Shipping == nil, пока регион не выбран; тогда Total == Subtotal.
type Totals struct {
	Subtotal   decimal.Decimal  `json:"subtotal"`
	Shipping   *decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal  `json:"total"`
	Region     string           `json:"region,omitempty"`
	RegionName string           `json:"region_name,omitempty"`
	ItemCount  int              `json:"item_count"`
}

// ShippingSelected — выбран ли регион доставки.
func (t *Totals) ShippingSelected() bool { return t.Shipping != nil }
