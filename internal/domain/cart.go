package domain

import "github.com/shopspring/decimal"

// LineItem — одна позиция корзины: товар + вариант + количество.
// Название, цена и картинка — снимок товара на момент добавления,
// последующие изменения каталога на корзину не влияют.
type LineItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

// LineTotal — цена позиции (price * quantity).
func (li *LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// SameSelection — совпадает ли ключ слияния (productId, size, color).
func (li *LineItem) SameSelection(productID, size, color string) bool {
	return li.ProductID == productID && li.Size == size && li.Color == color
}

// CountItems — суммарное количество единиц в корзине (бейдж в шапке).
func CountItems(items []LineItem) int {
	n := 0
	for i := range items {
		n += items[i].Quantity
	}
	return n
}
