package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// compositeKey — sid и ключ склеиваются через NUL, который не встречается в cookie.
func compositeKey(sid, key string) string {
	return sid + "\x00" + key
}

// evictLRU — удаляет наименее используемую запись.
func (s *Store) evictLRU() {
	if back := s.ll.Back(); back != nil {
		s.removeElement(back)
		metrics.SessionOps.WithLabelValues("evicted").Inc()
		metrics.SessionSize.Set(float64(len(s.index)))
	}
}

func (s *Store) removeElement(elem *list.Element) {
	if ent, ok := elem.Value.(*entry); ok {
		delete(s.index, ent.id)
	}
	s.ll.Remove(elem)
}

func (s *Store) isExpired(ent *entry, now time.Time) bool {
	if s.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (s *Store) expiryFrom(now time.Time) time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(s.ttl)
}

// pruneExpiredFromBack — чистит хвост до первой актуальной записи.
func (s *Store) pruneExpiredFromBack(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for back := s.ll.Back(); back != nil; back = s.ll.Back() {
		if !s.isExpired(back.Value.(*entry), now) {
			return
		}
		s.removeElement(back)
		metrics.SessionOps.WithLabelValues("expired").Inc()
		metrics.SessionSize.Set(float64(len(s.index)))
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
