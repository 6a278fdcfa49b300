package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// CartKey — фиксированный ключ корзины в сессионном хранилище.
const CartKey = "ghazma_cart"

// ErrCorruptCart — сохранённое значение не разбирается как список позиций.
var ErrCorruptCart = errors.New("corrupt cart record")

// Persistence — (де)сериализация корзины в SessionStore в виде JSON-массива.
type Persistence struct {
	store ports.SessionStore
	key   string
}

func NewPersistence(store ports.SessionStore) *Persistence {
	return &Persistence{store: store, key: CartKey}
}

// Load — отсутствующая или пустая запись читается как пустая корзина.
func (p *Persistence) Load(ctx context.Context, sid string) ([]domain.LineItem, error) {
	raw, found, err := p.store.Get(ctx, sid, p.key)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !found || len(raw) == 0 {
		return []domain.LineItem{}, nil
	}

	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}
	if items == nil {
		items = []domain.LineItem{}
	}
	return items, nil
}

// Save — перезаписывает корзину целиком.
func (p *Persistence) Save(ctx context.Context, sid string, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := p.store.Set(ctx, sid, p.key, raw); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Delete — удаляет запись корзины.
func (p *Persistence) Delete(ctx context.Context, sid string) error {
	if err := p.store.Delete(ctx, sid, p.key); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
