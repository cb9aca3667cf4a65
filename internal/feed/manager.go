package feed

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/futureuniv/campusfeed/domain"
)

const evictInterval = 1 * time.Minute

// Manager hands out one reconciler per page view, keyed by session. A view
// abandoned by navigation is simply forgotten after the idle TTL; any
// in-flight optimistic state goes with it, the next view reconstructs truth
// from the store.
type Manager struct {
	store domain.FeedStore
	ttl   time.Duration

	mu    sync.Mutex
	views map[string]*view
}

type view struct {
	rec      *Reconciler
	lastSeen time.Time
}

func NewManager(store domain.FeedStore, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
		views: make(map[string]*view),
	}
}

// View returns the reconciler for the session, creating one when the
// session is new or its identity changed (login/logout starts a fresh
// page view).
func (m *Manager) View(sessionID string, viewer domain.Identity) *Reconciler {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.views[sessionID]
	if !ok || v.rec.Viewer().ID != viewer.ID {
		v = &view{rec: NewReconciler(m.store, viewer)}
		m.views[sessionID] = v
	}
	v.rec.updateToken(viewer.Token) // token may rotate between requests
	v.lastSeen = time.Now()
	return v.rec
}

// Drop forgets a session's view state.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.views, sessionID)
	m.mu.Unlock()
}

// Start runs the idle-view eviction loop until ctx is cancelled.
func (m *Manager) Start(ctx context.Context) {
	ticker := time.NewTicker(evictInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evict()
		case <-ctx.Done():
			logrus.Info("shutting down feed view manager")
			return
		}
	}
}

func (m *Manager) evict() {
	deadline := time.Now().Add(-m.ttl)

	m.mu.Lock()
	for id, v := range m.views {
		if v.lastSeen.Before(deadline) {
			delete(m.views, id)
		}
	}
	m.mu.Unlock()
}
