package pricing

import (
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultRegions — губернии и фиксированные тарифы доставки (ج.م), в порядке отображения.
func DefaultRegions() []domain.Region {
	fee := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return []domain.Region{
		{Key: "cairo", Name: "القاهرة", Fee: fee(50)},
		{Key: "giza", Name: "الجيزة", Fee: fee(50)},
		{Key: "alex", Name: "الإسكندرية", Fee: fee(50)},
		{Key: "tanta", Name: "طنطا", Fee: fee(50)},
		{Key: "mansoura", Name: "المنصورة", Fee: fee(50)},
		{Key: "aswan", Name: "أسوان", Fee: fee(100)},
		{Key: "luxor", Name: "الأقصر", Fee: fee(100)},
		{Key: "sohag", Name: "سوهاج", Fee: fee(100)},
		{Key: "qena", Name: "قنا", Fee: fee(100)},
		{Key: "assuit", Name: "أسيوط", Fee: fee(100)},
		{Key: "suez", Name: "السويس", Fee: fee(70)},
		{Key: "ismailia", Name: "الإسماعيلية", Fee: fee(70)},
		{Key: "fayoum", Name: "الفيوم", Fee: fee(70)},
		{Key: "beni_suef", Name: "بني سويف", Fee: fee(70)},
		{Key: "minya", Name: "المنيا", Fee: fee(70)},
		{Key: "other", Name: "محافظات أخرى", Fee: fee(70)},
	}
}
