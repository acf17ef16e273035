package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sandevgo/findoc/internal/core"
)

func TestHistoryStore_SlidingWindow(t *testing.T) {
	tests := []struct {
		name      string
		appends   int
		limit     int
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{
			name:    "empty",
			appends: 0,
			limit:   10,
			wantLen: 0,
		},
		{
			name:      "under_limit",
			appends:   3,
			limit:     10,
			wantLen:   3,
			wantFirst: "msg-1",
			wantLast:  "msg-3",
		},
		{
			name:      "at_limit",
			appends:   10,
			limit:     10,
			wantLen:   10,
			wantFirst: "msg-1",
			wantLast:  "msg-10",
		},
		{
			name:      "one_past_limit_evicts_oldest",
			appends:   11,
			limit:     10,
			wantLen:   10,
			wantFirst: "msg-2",
			wantLast:  "msg-11",
		},
		{
			name:      "far_past_limit_keeps_last_window",
			appends:   25,
			limit:     10,
			wantLen:   10,
			wantFirst: "msg-16",
			wantLast:  "msg-25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewHistoryStore(tt.limit)
			for i := 1; i <= tt.appends; i++ {
				s.Append(7, core.RoleUser, fmt.Sprintf("msg-%d", i))
			}

			turns := s.Get(7)
			if len(turns) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(turns), tt.wantLen)
			}
			if tt.wantLen == 0 {
				return
			}
			if turns[0].Text != tt.wantFirst {
				t.Errorf("first = %s, want %s", turns[0].Text, tt.wantFirst)
			}
			if turns[len(turns)-1].Text != tt.wantLast {
				t.Errorf("last = %s, want %s", turns[len(turns)-1].Text, tt.wantLast)
			}
		})
	}
}

func TestHistoryStore_PreservesRelativeOrder(t *testing.T) {
	s := NewHistoryStore(10)
	for i := 1; i <= 15; i++ {
		role := core.RoleUser
		if i%2 == 0 {
			role = core.RoleModel
		}
		s.Append(1, role, fmt.Sprintf("msg-%d", i))
	}

	turns := s.Get(1)
	for i, turn := range turns {
		want := fmt.Sprintf("msg-%d", i+6)
		if turn.Text != want {
			t.Errorf("turns[%d] = %s, want %s", i, turn.Text, want)
		}
	}
}

func TestHistoryStore_GetReturnsCopy(t *testing.T) {
	s := NewHistoryStore(10)
	s.Append(1, core.RoleUser, "original")

	turns := s.Get(1)
	turns[0].Text = "mutated"

	if got := s.Get(1)[0].Text; got != "original" {
		t.Errorf("stored turn = %s, want original", got)
	}
}

func TestHistoryStore_UsersAreIndependent(t *testing.T) {
	s := NewHistoryStore(10)
	s.Append(1, core.RoleUser, "for user one")

	if got := s.Get(2); len(got) != 0 {
		t.Errorf("user 2 history len = %d, want 0", len(got))
	}
}

func TestHistoryStore_ConcurrentAppend(t *testing.T) {
	s := NewHistoryStore(10)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Append(int64(n%4), core.RoleUser, "x")
				s.Get(int64(n % 4))
			}
		}(i)
	}
	wg.Wait()

	for u := int64(0); u < 4; u++ {
		if got := len(s.Get(u)); got != 10 {
			t.Errorf("user %d len = %d, want 10", u, got)
		}
	}
}
