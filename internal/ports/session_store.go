package ports

import "context"

// SessionStore — хранилище «на вкладку браузера»: значения живут в рамках сессии sid.
// Отсутствующий ключ — (nil, false, nil), не ошибка.
type SessionStore interface {
	Get(ctx context.Context, sid, key string) ([]byte, bool, error)
	Set(ctx context.Context, sid, key string, value []byte) error
	Delete(ctx context.Context, sid, key string) error
}
