package ports

import (
	"context"
	"io"
)

// ImageStore — загрузка изображений товаров; возвращает публичный URL.
type ImageStore interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}
