package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/pkg/metrics"
)

type entry struct {
	id        string
	value     []byte
	expiresAt time.Time
}

// Store — in-process SessionStore: LRU по записям + скользящий TTL.
// Истечение TTL равносильно закрытию вкладки: сессия «забывается».
type Store struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// Option — настройка Store.
type Option func(*Store)

// WithClock — подмена часов (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore — capacity <= 0 трактуется как 1, ttl <= 0 — без истечения.
func NewStore(capacity int, ttl time.Duration, opts ...Option) *Store {
	if capacity <= 0 {
		capacity = 1
	}
	s := &Store{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, sid, key string) ([]byte, bool, error) {
	id := compositeKey(sid, key)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[id]
	if !ok {
		metrics.SessionOps.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	ent := elem.Value.(*entry)
	if s.isExpired(ent, now) {
		metrics.SessionOps.WithLabelValues("expired").Inc()
		s.removeElement(elem)
		metrics.SessionSize.Set(float64(len(s.index)))
		return nil, false, nil
	}
	s.ll.MoveToFront(elem)
	ent.expiresAt = s.expiryFrom(now)

	metrics.SessionOps.WithLabelValues("hit").Inc()
	return cloneBytes(ent.value), true, nil
}

func (s *Store) Set(_ context.Context, sid, key string, value []byte) error {
	id := compositeKey(sid, key)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.index[id]; ok {
		ent := elem.Value.(*entry)
		ent.value = cloneBytes(value)
		ent.expiresAt = s.expiryFrom(now)
		s.ll.MoveToFront(elem)
		return nil
	}

	s.pruneExpiredFromBack(now)

	elem := s.ll.PushFront(&entry{
		id:        id,
		value:     cloneBytes(value),
		expiresAt: s.expiryFrom(now),
	})
	s.index[id] = elem
	metrics.SessionSize.Set(float64(len(s.index)))

	if s.ll.Len() > s.capacity {
		s.evictLRU()
	}
	return nil
}

func (s *Store) Delete(_ context.Context, sid, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.index[compositeKey(sid, key)]; ok {
		s.removeElement(elem)
		metrics.SessionSize.Set(float64(len(s.index)))
	}
	return nil
}

// Len — текущее число записей (включая ещё не вычищенные просроченные).
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}
