package store

import (
	"sync"
	"time"

	"github.com/sandevgo/findoc/internal/core"
)

type batchEntry struct {
	files      []core.BatchFile
	processing bool
	createdAt  time.Time
}

// BatchStore accumulates processed files per user for combined analysis.
// Batches expire lazily after the TTL, which is longer than the single
// document TTL since uploading several files takes time.
type BatchStore struct {
	mu      sync.Mutex
	batches map[int64]*batchEntry
	ttl     time.Duration
	now     Clock
}

func NewBatchStore(ttl time.Duration, now Clock) *BatchStore {
	if now == nil {
		now = time.Now
	}
	return &BatchStore{
		batches: make(map[int64]*batchEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Initialize starts a fresh batch, discarding any prior one for the user.
func (s *BatchStore) Initialize(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches[userID] = &batchEntry{createdAt: s.now()}
}

// AddFile appends a processed file to the batch, starting one implicitly if
// none exists. Repeated uploads of the same name are kept as separate
// entries.
func (s *BatchStore) AddFile(userID int64, fileName, text string, typ core.DocType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.batches[userID]
	if !ok {
		entry = &batchEntry{createdAt: s.now()}
		s.batches[userID] = entry
	}
	entry.files = append(entry.files, core.BatchFile{
		FileName: fileName,
		Text:     text,
		Type:     typ,
	})
}

// Get returns a snapshot of the live batch. The snapshot is a copy, so
// callers cannot mutate store state through it. A stale batch is reported
// absent but left in place.
func (s *BatchStore) Get(userID int64) (core.BatchSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.batches[userID]
	if !ok || !fresh(entry.createdAt, s.ttl, s.now()) {
		return core.BatchSnapshot{}, false
	}

	files := make([]core.BatchFile, len(entry.files))
	copy(files, entry.files)
	return core.BatchSnapshot{
		Files:      files,
		Processing: entry.processing,
		CreatedAt:  entry.createdAt,
	}, true
}

// Clear removes the batch unconditionally.
func (s *BatchStore) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.batches, userID)
}

// MarkProcessing flags the batch as queued for analysis. No-op when the user
// has no batch.
func (s *BatchStore) MarkProcessing(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.batches[userID]; ok {
		entry.processing = true
	}
}
