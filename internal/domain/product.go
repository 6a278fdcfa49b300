package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderImage — картинка по умолчанию для товара без изображений.
const PlaceholderImage = "assets/images/placeholder.jpg"

// Product — запись каталога в том виде, в каком её отдаёт хранилище.
type Product struct {
	ID        string           `json:"id"`
	Name      string           `json:"name" validate:"required,max=200"`
	Price     decimal.Decimal  `json:"price" validate:"gte=0"`
	OldPrice  *decimal.Decimal `json:"old_price,omitempty" validate:"omitempty,gte=0"`
	Images    []string         `json:"images,omitempty" validate:"omitempty,dive,required"`
	Image     string           `json:"image,omitempty"` // устаревшее одиночное поле
	Sizes     []string         `json:"sizes" validate:"omitempty,dive,required"`
	Colors    []string         `json:"colors" validate:"omitempty,dive,required"`
	Details   string           `json:"details,omitempty"`
	Category  string           `json:"category" validate:"required"`
	Label     string           `json:"label,omitempty" validate:"omitempty,max=100"`
	CreatedAt time.Time        `json:"created_at"`
}

// Gallery — список изображений с учётом fallback: images → image → placeholder.
func (p *Product) Gallery(placeholder string) []string {
	if len(p.Images) > 0 {
		return append([]string(nil), p.Images...)
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	if placeholder == "" {
		placeholder = PlaceholderImage
	}
	return []string{placeholder}
}

// MainImage — первое изображение галереи.
func (p *Product) MainImage(placeholder string) string {
	return p.Gallery(placeholder)[0]
}

// HasVariants — товар требует выбора размера и цвета.
func (p *Product) HasVariants() bool {
	return len(p.Sizes) > 0 || len(p.Colors) > 0
}

// OffersSize / OffersColor — допустим ли выбор для данного товара.
func (p *Product) OffersSize(size string) bool   { return contains(p.Sizes, size) }
func (p *Product) OffersColor(color string) bool { return contains(p.Colors, color) }

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
