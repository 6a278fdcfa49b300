package cart

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// MetricsListener — наблюдает размер корзины после каждого изменения.
func MetricsListener(_ context.Context, _ string, items []domain.LineItem) {
	metrics.CartUnits.Observe(float64(domain.CountItems(items)))
}
