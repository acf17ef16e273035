package store

import (
	"sync"
	"time"

	"github.com/sandevgo/findoc/internal/core"
)

// DocumentStore holds the most recently processed document per user. A new
// upload overwrites the previous one; entries expire lazily after the TTL.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[int64]core.Document
	ttl  time.Duration
	now  Clock
}

func NewDocumentStore(ttl time.Duration, now Clock) *DocumentStore {
	if now == nil {
		now = time.Now
	}
	return &DocumentStore{
		docs: make(map[int64]core.Document),
		ttl:  ttl,
		now:  now,
	}
}

// Set replaces any existing entry with a new one stamped with the current
// time.
func (s *DocumentStore) Set(userID int64, text string, typ core.DocType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[userID] = core.Document{
		Text:      text,
		Type:      typ,
		CreatedAt: s.now(),
	}
}

// Get returns the user's document while it is still live. A stale entry is
// reported absent but left in place.
func (s *DocumentStore) Get(userID int64) (core.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[userID]
	if !ok || !fresh(doc.CreatedAt, s.ttl, s.now()) {
		return core.Document{}, false
	}
	return doc, true
}

// Clear removes the entry unconditionally, regardless of age.
func (s *DocumentStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, userID)
}
