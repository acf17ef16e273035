package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/findoc/internal/core"
)

func TestBatchStore_AddFile(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(s *BatchStore)
		wantOk    bool
		wantNames []string
	}{
		{
			name:   "no_batch",
			setup:  func(s *BatchStore) {},
			wantOk: false,
		},
		{
			name: "initialize_only",
			setup: func(s *BatchStore) {
				s.Initialize(1)
			},
			wantOk:    true,
			wantNames: []string{},
		},
		{
			name: "implicit_initialize_on_add",
			setup: func(s *BatchStore) {
				s.AddFile(1, "a.pdf", "X", core.DocTypePDF)
				s.AddFile(1, "b.xlsx", "Y", core.DocTypeExcel)
				s.AddFile(1, "c.pdf", "Z", core.DocTypePDF)
			},
			wantOk:    true,
			wantNames: []string{"a.pdf", "b.xlsx", "c.pdf"},
		},
		{
			name: "duplicate_names_kept_separately",
			setup: func(s *BatchStore) {
				s.Initialize(1)
				s.AddFile(1, "report.pdf", "v1", core.DocTypePDF)
				s.AddFile(1, "report.pdf", "v2", core.DocTypePDF)
			},
			wantOk:    true,
			wantNames: []string{"report.pdf", "report.pdf"},
		},
		{
			name: "initialize_discards_prior_batch",
			setup: func(s *BatchStore) {
				s.AddFile(1, "old.pdf", "old", core.DocTypePDF)
				s.Initialize(1)
				s.AddFile(1, "new.pdf", "new", core.DocTypePDF)
			},
			wantOk:    true,
			wantNames: []string{"new.pdf"},
		},
		{
			name: "cleared",
			setup: func(s *BatchStore) {
				s.AddFile(1, "a.pdf", "X", core.DocTypePDF)
				s.Clear(1)
			},
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBatchStore(600*time.Second, nil)
			tt.setup(s)

			snap, ok := s.Get(1)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if len(snap.Files) != len(tt.wantNames) {
				t.Fatalf("files = %d, want %d", len(snap.Files), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if snap.Files[i].FileName != name {
					t.Errorf("files[%d] = %s, want %s", i, snap.Files[i].FileName, name)
				}
			}
		})
	}
}

func TestBatchStore_Expiry(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		wantOk  bool
	}{
		{"just_created", 0, true},
		{"just_before_ttl", 599 * time.Second, true},
		{"just_after_ttl", 601 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := newFakeClock()
			s := NewBatchStore(600*time.Second, clk.Now)

			s.AddFile(1, "a.pdf", "X", core.DocTypePDF)
			clk.Advance(tt.elapsed)

			if _, ok := s.Get(1); ok != tt.wantOk {
				t.Errorf("ok = %v, want %v", ok, tt.wantOk)
			}
		})
	}
}

func TestBatchStore_ReadDoesNotDeleteStaleBatch(t *testing.T) {
	clk := newFakeClock()
	s := NewBatchStore(600*time.Second, clk.Now)

	s.AddFile(1, "a.pdf", "X", core.DocTypePDF)
	clk.Advance(time.Hour)

	if _, ok := s.Get(1); ok {
		t.Fatal("stale batch should be reported absent")
	}
	if _, held := s.batches[1]; !held {
		t.Error("stale batch was deleted by a read")
	}
}

func TestBatchStore_MarkProcessing(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(s *BatchStore)
		wantOk         bool
		wantProcessing bool
	}{
		{
			name: "marks_existing_batch",
			setup: func(s *BatchStore) {
				s.Initialize(1)
				s.MarkProcessing(1)
			},
			wantOk:         true,
			wantProcessing: true,
		},
		{
			name: "noop_without_batch",
			setup: func(s *BatchStore) {
				s.MarkProcessing(1)
			},
			wantOk: false,
		},
		{
			name: "initialize_resets_flag",
			setup: func(s *BatchStore) {
				s.Initialize(1)
				s.MarkProcessing(1)
				s.Initialize(1)
			},
			wantOk:         true,
			wantProcessing: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBatchStore(600*time.Second, nil)
			tt.setup(s)

			snap, ok := s.Get(1)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && snap.Processing != tt.wantProcessing {
				t.Errorf("processing = %v, want %v", snap.Processing, tt.wantProcessing)
			}
		})
	}
}

func TestBatchStore_SnapshotIsCopy(t *testing.T) {
	s := NewBatchStore(600*time.Second, nil)
	s.AddFile(1, "a.pdf", "original", core.DocTypePDF)

	snap, _ := s.Get(1)
	snap.Files[0].Text = "mutated"
	snap.Files = append(snap.Files, core.BatchFile{FileName: "b.pdf"})

	again, _ := s.Get(1)
	if len(again.Files) != 1 {
		t.Fatalf("files = %d, want 1", len(again.Files))
	}
	if again.Files[0].Text != "original" {
		t.Errorf("text = %s, want original", again.Files[0].Text)
	}
}

func TestBatchStore_ConcurrentAccess(t *testing.T) {
	s := NewBatchStore(600*time.Second, nil)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			userID := int64(n % 3)
			for j := 0; j < 50; j++ {
				s.AddFile(userID, fmt.Sprintf("f-%d-%d.pdf", n, j), "x", core.DocTypePDF)
				s.Get(userID)
				s.MarkProcessing(userID)
			}
		}(i)
	}
	wg.Wait()
}
