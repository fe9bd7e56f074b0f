package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/masquepolleras/polleras-api/internal/domain/entity"
	"github.com/masquepolleras/polleras-api/internal/domain/enum"
)

// QuoteLineItem is one working entry of an open quote. Subtotals are
// always derived from quantity and unit price, never stored.
type QuoteLineItem struct {
	ID             uuid.UUID           `json:"id"`
	Description    string              `json:"description"`
	Quantity       int                 `json:"quantity"`
	UnitPriceCents int64               `json:"-"`
	Origin         enum.LineItemOrigin `json:"origin"`
}

// SubtotalCents returns quantity times unit price
func (i QuoteLineItem) SubtotalCents() int64 {
	return int64(i.Quantity) * i.UnitPriceCents
}

// QuoteSession is the in-memory working state of a quote being
// composed for a lead. It never touches the database until the
// counter is committed on export.
type QuoteSession struct {
	ID        uuid.UUID
	Lead      *entity.Lead
	Products  []entity.Product
	Services  []entity.ServiceItem
	Items     []QuoteLineItem
	Preview   int // counter value the next export will print
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

// TotalCents recomputes the estimate from scratch
func (s *QuoteSession) TotalCents() int64 {
	var total int64
	for _, item := range s.Items {
		total += item.SubtotalCents()
	}
	return total
}

// findItem returns the index of the item with the given id, or -1
func (s *QuoteSession) findItem(id uuid.UUID) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// QuoteSessionStore keeps open quote sessions in memory and evicts
// the ones nobody has touched within the TTL.
type QuoteSessionStore struct {
	sessions map[uuid.UUID]*QuoteSession
	mu       sync.RWMutex
	ttl      time.Duration
	done     chan struct{}
}

// NewQuoteSessionStore creates a session store and starts its
// cleanup goroutine.
func NewQuoteSessionStore(ttl time.Duration) *QuoteSessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	store := &QuoteSessionStore{
		sessions: make(map[uuid.UUID]*QuoteSession),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go store.cleanupLoop()
	return store
}

// Put registers a new session
func (st *QuoteSessionStore) Put(session *QuoteSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session.lastSeen = time.Now()
	st.sessions[session.ID] = session
}

// Get returns the session and refreshes its TTL
func (st *QuoteSessionStore) Get(id uuid.UUID) *QuoteSession {
	st.mu.RLock()
	session, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil
	}

	session.mu.Lock()
	session.lastSeen = time.Now()
	session.mu.Unlock()
	return session
}

// Delete discards a session and its line items
func (st *QuoteSessionStore) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of open sessions
func (st *QuoteSessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Stop terminates the cleanup goroutine
func (st *QuoteSessionStore) Stop() {
	close(st.done)
}

// cleanupLoop periodically removes expired sessions
func (st *QuoteSessionStore) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.cleanup()
		case <-st.done:
			return
		}
	}
}

func (st *QuoteSessionStore) cleanup() {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, session := range st.sessions {
		session.mu.Lock()
		expired := session.lastSeen.Before(cutoff)
		session.mu.Unlock()
		if expired {
			delete(st.sessions, id)
		}
	}
}
