package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestQuoteSessionStoreLifecycle(t *testing.T) {
	store := NewQuoteSessionStore(time.Hour)
	defer store.Stop()

	session := &QuoteSession{ID: uuid.New()}
	store.Put(session)

	if store.Len() != 1 {
		t.Fatalf("len = %d, want 1", store.Len())
	}
	if got := store.Get(session.ID); got != session {
		t.Error("Get returned a different session")
	}
	if got := store.Get(uuid.New()); got != nil {
		t.Error("Get returned a session for an unknown id")
	}

	store.Delete(session.ID)
	if store.Len() != 0 {
		t.Errorf("len after delete = %d, want 0", store.Len())
	}
}

func TestQuoteSessionStoreCleanupEvictsStale(t *testing.T) {
	store := NewQuoteSessionStore(time.Minute)
	defer store.Stop()

	stale := &QuoteSession{ID: uuid.New()}
	fresh := &QuoteSession{ID: uuid.New()}
	store.Put(stale)
	store.Put(fresh)

	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	store.cleanup()

	if store.Get(stale.ID) != nil {
		t.Error("stale session survived cleanup")
	}
	if store.Get(fresh.ID) == nil {
		t.Error("fresh session was evicted")
	}
}

func TestQuoteSessionTotalRecomputes(t *testing.T) {
	session := &QuoteSession{
		Items: []QuoteLineItem{
			{ID: uuid.New(), Quantity: 2, UnitPriceCents: 1500},
			{ID: uuid.New(), Quantity: 1, UnitPriceCents: 45000},
		},
	}

	if got := session.TotalCents(); got != 48000 {
		t.Errorf("total = %d, want 48000", got)
	}

	session.Items[0].Quantity = 3
	if got := session.TotalCents(); got != 49500 {
		t.Errorf("total after edit = %d, want 49500", got)
	}
}
