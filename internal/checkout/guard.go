package checkout

import (
	"sync"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// submitGuard — флаг «идёт отправка» на сессию, общий для обоих каналов.
type submitGuard struct {
	mu       sync.Mutex
	inFlight map[string]domain.Channel
}

func newSubmitGuard() *submitGuard {
	return &submitGuard{inFlight: make(map[string]domain.Channel)}
}

// acquire — false, если в сессии уже идёт отправка.
func (g *submitGuard) acquire(sid string, ch domain.Channel) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[sid]; busy {
		return false
	}
	g.inFlight[sid] = ch
	return true
}

func (g *submitGuard) release(sid string) {
	g.mu.Lock()
	delete(g.inFlight, sid)
	g.mu.Unlock()
}

func (g *submitGuard) state(sid string) domain.SubmitState {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[sid]; busy {
		return domain.SubmitSubmitting
	}
	return domain.SubmitIdle
}
