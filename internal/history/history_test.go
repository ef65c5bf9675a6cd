package history

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestContext_EmptySession(t *testing.T) {
	s := NewStore()
	if got := s.Context("default"); got != "" {
		t.Errorf("expected empty context, got %q", got)
	}
}

func TestContext_RendersRecentTurnsOldestFirst(t *testing.T) {
	s := NewStore()
	s.Append("default", "질문1", "답변1")
	s.Append("default", "질문2", "답변2")

	want := "사용자: 질문1\n챗봇: 답변1\n\n사용자: 질문2\n챗봇: 답변2"
	if got := s.Context("default"); got != want {
		t.Errorf("unexpected context:\n got: %q\nwant: %q", got, want)
	}
}

func TestContext_WindowIsThreeTurns(t *testing.T) {
	s := NewStore()
	for i := 1; i <= 5; i++ {
		s.Append("default", fmt.Sprintf("질문%d", i), fmt.Sprintf("답변%d", i))
	}

	got := s.Context("default")
	if strings.Contains(got, "질문2") {
		t.Errorf("context should only hold the 3 most recent turns, got %q", got)
	}
	for i := 3; i <= 5; i++ {
		if !strings.Contains(got, fmt.Sprintf("질문%d", i)) {
			t.Errorf("context missing turn %d: %q", i, got)
		}
	}
	if idx3, idx5 := strings.Index(got, "질문3"), strings.Index(got, "질문5"); idx3 > idx5 {
		t.Error("context should be oldest-first")
	}
}

func TestContext_Idempotent(t *testing.T) {
	s := NewStore()
	s.Append("default", "질문", "답변")

	first := s.Context("default")
	second := s.Context("default")
	if first != second {
		t.Errorf("repeated reads should be identical: %q vs %q", first, second)
	}
}

func TestAppend_EvictsOldestBeyondTen(t *testing.T) {
	s := NewStore()
	for i := 1; i <= 11; i++ {
		s.Append("default", fmt.Sprintf("질문%d", i), fmt.Sprintf("답변%d", i))
	}

	if got := s.Len("default"); got != 10 {
		t.Fatalf("expected history capped at 10, got %d", got)
	}

	// Turn 1 is evicted; the window holds turns 9-11.
	got := s.Context("default")
	if strings.Contains(got, "질문1\n") || strings.Contains(got, "질문8") {
		t.Errorf("expected oldest turns evicted from window, got %q", got)
	}
	if !strings.Contains(got, "질문11") {
		t.Errorf("expected newest turn present, got %q", got)
	}
}

func TestSessions_AreIsolated(t *testing.T) {
	s := NewStore()
	s.Append("alice", "앨리스 질문", "앨리스 답변")
	s.Append("bob", "밥 질문", "밥 답변")

	if got := s.Context("alice"); strings.Contains(got, "밥") {
		t.Errorf("alice's context leaked bob's turns: %q", got)
	}
	if got := s.Len("bob"); got != 1 {
		t.Errorf("expected 1 turn for bob, got %d", got)
	}
}

func TestAcquire_SerializesSameSession(t *testing.T) {
	s := NewStore()

	release := s.Acquire("default")
	acquired := make(chan struct{})
	go func() {
		r := s.Acquire("default")
		close(acquired)
		r()
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire should block while the first holds the lock")
	default:
	}

	release()
	<-acquired
}

func TestAcquire_DifferentSessionsDoNotContend(t *testing.T) {
	s := NewStore()

	release := s.Acquire("alice")
	defer release()

	done := make(chan struct{})
	go func() {
		r := s.Acquire("bob")
		r()
		close(done)
	}()
	<-done
}

func TestConcurrentAppends_StayBounded(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				s.Append("default", fmt.Sprintf("q-%d-%d", w, i), "a")
			}
		}(w)
	}
	wg.Wait()

	if got := s.Len("default"); got != 10 {
		t.Errorf("expected history capped at 10 under concurrency, got %d", got)
	}
}
