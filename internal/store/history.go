package store

import (
	"sync"

	"github.com/sandevgo/findoc/internal/core"
)

// HistoryStore keeps a sliding window of recent conversation turns per user.
// The window is bounded in count, not in wall-clock time, and is never
// cleared explicitly.
type HistoryStore struct {
	mu    sync.RWMutex
	turns map[int64][]core.Turn
	limit int
}

func NewHistoryStore(limit int) *HistoryStore {
	return &HistoryStore{
		turns: make(map[int64][]core.Turn),
		limit: limit,
	}
}

// Append adds one turn to the end of the user's history. When the window
// overflows, exactly the oldest turn is evicted.
func (s *HistoryStore) Append(userID int64, role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.turns[userID], core.Turn{Role: role, Text: text})
	if len(turns) > s.limit {
		turns = turns[1:]
	}
	s.turns[userID] = turns
}

// Get returns a copy of the user's history in chronological order. Reading
// never mutates the store.
func (s *HistoryStore) Get(userID int64) []core.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns[userID]
	out := make([]core.Turn, len(turns))
	copy(out, turns)
	return out
}
