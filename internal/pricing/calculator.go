package pricing

import (
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Calculator — производные суммы корзины. Состояния не хранит, безопасен для конкурентного использования.
type Calculator struct {
	regions []domain.Region
	byKey   map[string]domain.Region
}

// NewCalculator — пустой список регионов заменяется DefaultRegions.
func NewCalculator(regions []domain.Region) *Calculator {
	if len(regions) == 0 {
		regions = DefaultRegions()
	}
	c := &Calculator{
		regions: append([]domain.Region(nil), regions...),
		byKey:   make(map[string]domain.Region, len(regions)),
	}
	for _, r := range c.regions {
		c.byKey[r.Key] = r
	}
	return c
}

// Regions — копия справочника регионов в порядке отображения.
func (c *Calculator) Regions() []domain.Region {
	return append([]domain.Region(nil), c.regions...)
}

// Region — регион по ключу или ErrUnknownRegion.
func (c *Calculator) Region(key string) (domain.Region, error) {
	r, ok := c.byKey[key]
	if !ok {
		return domain.Region{}, fmt.Errorf("%w: %q", domain.ErrUnknownRegion, key)
	}
	return r, nil
}

// Subtotal — сумма price*quantity по всем позициям; для пустой корзины 0.
func (c *Calculator) Subtotal(items []domain.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for i := range items {
		sum = sum.Add(items[i].LineTotal())
	}
	return sum
}

// ShippingFee — фиксированный тариф региона.
func (c *Calculator) ShippingFee(regionKey string) (decimal.Decimal, error) {
	r, err := c.Region(regionKey)
	if err != nil {
		return decimal.Zero, err
	}
	return r.Fee, nil
}

// Total — subtotal + доставка. Пустой regionKey означает «регион не выбран»: total == subtotal.
func (c *Calculator) Total(items []domain.LineItem, regionKey string) (decimal.Decimal, error) {
	subtotal := c.Subtotal(items)
	if regionKey == "" {
		return subtotal, nil
	}
	fee, err := c.ShippingFee(regionKey)
	if err != nil {
		return decimal.Zero, err
	}
	return subtotal.Add(fee), nil
}

// Summarize — view-model итогов корзины.
func (c *Calculator) Summarize(items []domain.LineItem, regionKey string) (domain.Totals, error) {
	t := domain.Totals{
		Subtotal:  c.Subtotal(items),
		ItemCount: domain.CountItems(items),
	}
	t.Total = t.Subtotal
	if regionKey == "" {
		return t, nil
	}

	r, err := c.Region(regionKey)
	if err != nil {
		return domain.Totals{}, err
	}
	fee := r.Fee
	t.Shipping = &fee
	t.Total = t.Subtotal.Add(fee)
	t.Region = r.Key
	t.RegionName = r.Name
	return t, nil
}
