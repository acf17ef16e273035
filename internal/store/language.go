package store

import (
	"sync"

	"github.com/sandevgo/findoc/internal/core"
)

// LanguageStore maps a user to their chosen display language.
type LanguageStore struct {
	mu       sync.RWMutex
	prefs    map[int64]core.Language
	fallback core.Language
}

func NewLanguageStore(fallback core.Language) *LanguageStore {
	return &LanguageStore{
		prefs:    make(map[int64]core.Language),
		fallback: fallback,
	}
}

// Get returns the stored preference or the fallback. An unknown user is the
// default path, not an error.
func (s *LanguageStore) Get(userID int64) core.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if lang, ok := s.prefs[userID]; ok {
		return lang
	}
	return s.fallback
}

// Set overwrites the user's preference unconditionally.
func (s *LanguageStore) Set(userID int64, lang core.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs[userID] = lang
}
