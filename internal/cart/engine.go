package cart

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/google/uuid"
)

const lockStripes = 64

// Listener — подписчик на изменение корзины; получает копию нового состояния.
// Вызывается под блокировкой сессии, поэтому не должен обращаться к Engine.
type Listener func(ctx context.Context, sid string, items []domain.LineItem)

// Engine — корзина сессии: add/set/adjust/remove/clear со слиянием по (productId, size, color).
// Чтение-изменение-запись одной сессии сериализуется полосатой блокировкой.
type Engine struct {
	persist     *Persistence
	log         ports.Logger
	newID       func() string
	placeholder string

	seed  maphash.Seed
	locks [lockStripes]sync.Mutex

	lmu       sync.RWMutex
	listeners []Listener
}

// Option — настройка Engine.
type Option func(*Engine)

// WithIDGenerator — генератор id позиций (по умолчанию uuid).
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// WithPlaceholderImage — картинка для товаров без изображений.
func WithPlaceholderImage(url string) Option {
	return func(e *Engine) {
		if url != "" {
			e.placeholder = url
		}
	}
}

// NewEngine — DI-конструктор.
func NewEngine(store ports.SessionStore, log ports.Logger, opts ...Option) *Engine {
	e := &Engine{
		persist:     NewPersistence(store),
		log:         log,
		newID:       uuid.NewString,
		placeholder: domain.PlaceholderImage,
		seed:        maphash.MakeSeed(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OnChange — регистрирует слушателя изменений.
func (e *Engine) OnChange(l Listener) {
	e.lmu.Lock()
	defer e.lmu.Unlock()
	e.listeners = append(e.listeners, l)
}

// Add — добавляет товар. Та же комбинация (productId, size, color) увеличивает количество,
// иначе создаётся новая позиция со снимком имени, цены и первой картинки.
// quantity < 1 нормализуется до 1.
func (e *Engine) Add(
	ctx context.Context,
	sid string,
	product *domain.Product,
	quantity int,
	size, color string,
) (domain.LineItem, error) {
	if product == nil {
		return domain.LineItem{}, fmt.Errorf("%w: product is required", domain.ErrValidation)
	}
	if quantity < 1 {
		quantity = 1
	}

	var added domain.LineItem
	op := "add"
	_, err := e.mutate(ctx, sid, func(items []domain.LineItem) ([]domain.LineItem, bool) {
		for i := range items {
			if items[i].SameSelection(product.ID, size, color) {
				items[i].Quantity += quantity
				added = items[i]
				op = "merge"
				return items, true
			}
		}
		added = domain.LineItem{
			ID:        e.newID(),
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			ImageURL:  product.MainImage(e.placeholder),
			Quantity:  quantity,
			Size:      size,
			Color:     color,
		}
		return append(items, added), true
	})
	if err != nil {
		return domain.LineItem{}, err
	}
	metrics.CartOps.WithLabelValues(op).Inc()
	return added, nil
}

// SetQuantity — абсолютная установка количества; n <= 0 удаляет позицию. Неизвестный id — no-op.
func (e *Engine) SetQuantity(ctx context.Context, sid, id string, n int) ([]domain.LineItem, error) {
	items, err := e.mutate(ctx, sid, func(items []domain.LineItem) ([]domain.LineItem, bool) {
		i := indexOf(items, id)
		if i < 0 {
			return items, false
		}
		if n <= 0 {
			return removeAt(items, i), true
		}
		if items[i].Quantity == n {
			return items, false
		}
		items[i].Quantity = n
		return items, true
	})
	if err == nil {
		metrics.CartOps.WithLabelValues("set").Inc()
	}
	return items, err
}

// AdjustQuantity — относительное изменение; результат <= 0 удаляет позицию. Неизвестный id — no-op.
func (e *Engine) AdjustQuantity(ctx context.Context, sid, id string, delta int) ([]domain.LineItem, error) {
	items, err := e.mutate(ctx, sid, func(items []domain.LineItem) ([]domain.LineItem, bool) {
		i := indexOf(items, id)
		if i < 0 || delta == 0 {
			return items, false
		}
		next := items[i].Quantity + delta
		if next <= 0 {
			return removeAt(items, i), true
		}
		items[i].Quantity = next
		return items, true
	})
	if err == nil {
		metrics.CartOps.WithLabelValues("adjust").Inc()
	}
	return items, err
}

// Remove — удаляет позицию; отсутствие id не ошибка.
func (e *Engine) Remove(ctx context.Context, sid, id string) ([]domain.LineItem, error) {
	items, err := e.mutate(ctx, sid, func(items []domain.LineItem) ([]domain.LineItem, bool) {
		i := indexOf(items, id)
		if i < 0 {
			return items, false
		}
		return removeAt(items, i), true
	})
	if err == nil {
		metrics.CartOps.WithLabelValues("remove").Inc()
	}
	return items, err
}

// Clear — очищает корзину и удаляет сохранённую запись.
func (e *Engine) Clear(ctx context.Context, sid string) error {
	mu := e.lockFor(sid)
	mu.Lock()
	defer mu.Unlock()

	if err := e.persist.Delete(ctx, sid); err != nil {
		e.log.Errorf(ctx, "cart clear failed err=%v", err)
		return err
	}
	metrics.CartOps.WithLabelValues("clear").Inc()
	e.emit(ctx, sid, []domain.LineItem{})
	return nil
}

// All — упорядоченная копия позиций.
func (e *Engine) All(ctx context.Context, sid string) ([]domain.LineItem, error) {
	mu := e.lockFor(sid)
	mu.Lock()
	defer mu.Unlock()
	return e.load(ctx, sid)
}

// Count — суммарное количество единиц (бейдж корзины).
func (e *Engine) Count(ctx context.Context, sid string) (int, error) {
	items, err := e.All(ctx, sid)
	if err != nil {
		return 0, err
	}
	return domain.CountItems(items), nil
}

// ------вспомогательные функции------

// mutate — загрузка, изменение и сохранение корзины под блокировкой сессии.
// fn возвращает новое состояние и признак изменения; без изменений ничего не пишется.
func (e *Engine) mutate(
	ctx context.Context,
	sid string,
	fn func([]domain.LineItem) ([]domain.LineItem, bool),
) ([]domain.LineItem, error) {
	mu := e.lockFor(sid)
	mu.Lock()
	defer mu.Unlock()

	items, err := e.load(ctx, sid)
	if err != nil {
		return nil, err
	}
	next, changed := fn(items)
	if !changed {
		return next, nil
	}
	if err := e.persist.Save(ctx, sid, next); err != nil {
		e.log.Errorf(ctx, "cart save failed err=%v", err)
		return nil, err
	}
	e.emit(ctx, sid, next)
	return next, nil
}

// load — битая запись сбрасывается в пустую корзину с предупреждением.
func (e *Engine) load(ctx context.Context, sid string) ([]domain.LineItem, error) {
	items, err := e.persist.Load(ctx, sid)
	if errors.Is(err, ErrCorruptCart) {
		e.log.Warnf(ctx, "cart record reset: %v", err)
		return []domain.LineItem{}, nil
	}
	if err != nil {
		e.log.Errorf(ctx, "cart load failed err=%v", err)
		return nil, err
	}
	return items, nil
}

func (e *Engine) emit(ctx context.Context, sid string, items []domain.LineItem) {
	e.lmu.RLock()
	ls := append([]Listener(nil), e.listeners...)
	e.lmu.RUnlock()

	for _, l := range ls {
		l(ctx, sid, append([]domain.LineItem(nil), items...))
	}
}

func (e *Engine) lockFor(sid string) *sync.Mutex {
	return &e.locks[maphash.String(e.seed, sid)%lockStripes]
}

func indexOf(items []domain.LineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func removeAt(items []domain.LineItem, i int) []domain.LineItem {
	return append(items[:i], items[i+1:]...)
}
