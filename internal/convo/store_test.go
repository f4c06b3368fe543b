package convo

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/brainbytes/internal/classify"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestGet_UnknownUserIsEmpty(t *testing.T) {
	s := NewStore(Options{})
	c := s.Get("nobody")
	if !c.Empty() {
		t.Fatalf("expected empty context, got %+v", c)
	}
	if c.PreviousQuestion() != "" {
		t.Errorf("PreviousQuestion = %q, want empty", c.PreviousQuestion())
	}
	if s.Len() != 0 {
		t.Errorf("Get should not create entries, Len = %d", s.Len())
	}
}

func TestUpdate_CapsAtFiveMostRecentFirst(t *testing.T) {
	s := NewStore(Options{})
	for i := 0; i < 10; i++ {
		s.Update("u", fmt.Sprintf("q%d", i), fmt.Sprintf("r%d", i), classify.SubjectMath)
	}

	c := s.Get("u")
	want := []string{"q9", "q8", "q7", "q6", "q5"}
	if len(c.RecentQuestions) != MaxHistory {
		t.Fatalf("got %d questions, want %d", len(c.RecentQuestions), MaxHistory)
	}
	for i, q := range want {
		if c.RecentQuestions[i] != q {
			t.Errorf("RecentQuestions[%d] = %q, want %q", i, c.RecentQuestions[i], q)
		}
	}
	if len(c.RecentResponses) != MaxHistory || c.RecentResponses[0] != "r9" {
		t.Errorf("RecentResponses = %v", c.RecentResponses)
	}
	if len(c.RecentCategories) != MaxHistory {
		t.Errorf("RecentCategories = %v", c.RecentCategories)
	}
}

func TestUpdate_SameQuestionTenTimes(t *testing.T) {
	s := NewStore(Options{})
	for i := 0; i < 10; i++ {
		s.Update("anonymous", "what is pi", "pi", classify.SubjectGeneral)
	}
	if got := len(s.Get("anonymous").RecentQuestions); got != 5 {
		t.Errorf("stored %d, want 5", got)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := NewStore(Options{})
	s.Update("u", "q", "r", classify.SubjectMath)

	c := s.Get("u")
	c.RecentQuestions[0] = "mutated"

	if got := s.Get("u").RecentQuestions[0]; got != "q" {
		t.Errorf("store was mutated through copy: %q", got)
	}
}

func TestSetFollowUps(t *testing.T) {
	s := NewStore(Options{})
	s.SetFollowUps("u", []string{"a", "b"})
	s.SetFollowUps("u", []string{"c"})

	got := s.Get("u").FollowUps
	if len(got) != 1 || got[0] != "c" {
		t.Errorf("FollowUps = %v, want [c]", got)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	s := NewStore(Options{})
	s.Update("alice", "q1", "r1", classify.SubjectMath)

	if !s.Get("bob").Empty() {
		t.Error("bob should have no history")
	}
	if s.IsFollowUp("bob", "it broke") {
		t.Error("bob has no history, should not be a follow-up")
	}
	if !s.IsFollowUp("alice", "it broke") {
		t.Error("alice has history, pronoun question should be a follow-up")
	}
}

func TestTTLExpiry(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(Options{TTL: time.Hour, Now: clock.Now})

	s.Update("u", "q", "r", classify.SubjectMath)
	clock.Advance(30 * time.Minute)
	if s.Get("u").Empty() {
		t.Fatal("context expired too early")
	}

	clock.Advance(31 * time.Minute)
	if !s.Get("u").Empty() {
		t.Fatal("context should have expired")
	}
	if s.Len() != 0 {
		t.Errorf("expired entry not removed, Len = %d", s.Len())
	}
}

func TestTTL_TouchRefreshes(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(Options{TTL: time.Hour, Now: clock.Now})

	s.Update("u", "q1", "r1", classify.SubjectMath)
	clock.Advance(50 * time.Minute)
	s.Update("u", "q2", "r2", classify.SubjectMath)
	clock.Advance(50 * time.Minute)

	c := s.Get("u")
	if len(c.RecentQuestions) != 2 {
		t.Errorf("got %d questions, want 2", len(c.RecentQuestions))
	}
}

func TestUpdate_AfterExpiryStartsFresh(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(Options{TTL: time.Minute, Now: clock.Now})

	s.Update("u", "old", "r", classify.SubjectMath)
	clock.Advance(2 * time.Minute)
	s.Update("u", "new", "r", classify.SubjectMath)

	c := s.Get("u")
	if len(c.RecentQuestions) != 1 || c.RecentQuestions[0] != "new" {
		t.Errorf("RecentQuestions = %v, want [new]", c.RecentQuestions)
	}
}

func TestSweep(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(Options{TTL: time.Hour, Now: clock.Now})

	s.Update("a", "q", "r", classify.SubjectMath)
	clock.Advance(2 * time.Hour)
	s.Update("b", "q", "r", classify.SubjectMath)

	if removed := s.Sweep(); removed != 1 {
		t.Errorf("Sweep removed %d, want 1", removed)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestMaxUsers_EvictsLeastRecentlyTouched(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(Options{MaxUsers: 2, Now: clock.Now})

	s.Update("a", "q", "r", classify.SubjectMath)
	clock.Advance(time.Second)
	s.Update("b", "q", "r", classify.SubjectMath)
	clock.Advance(time.Second)
	s.Update("a", "q2", "r2", classify.SubjectMath) // a is now newer than b
	clock.Advance(time.Second)
	s.Update("c", "q", "r", classify.SubjectMath)

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if !s.Get("b").Empty() {
		t.Error("b should have been evicted")
	}
	if s.Get("a").Empty() || s.Get("c").Empty() {
		t.Error("a and c should remain")
	}
}

func TestForget(t *testing.T) {
	s := NewStore(Options{})
	s.Update("u", "q", "r", classify.SubjectMath)
	s.Forget("u")
	if !s.Get("u").Empty() {
		t.Error("context should be gone")
	}
}

func TestConcurrentUpdates(t *testing.T) {
	s := NewStore(Options{MaxUsers: 50})
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("u%d", i%5)
			for j := 0; j < 50; j++ {
				s.Update(user, "q", "r", classify.SubjectMath)
				s.SetFollowUps(user, []string{"f"})
				_ = s.Get(user)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		if got := len(s.Get(fmt.Sprintf("u%d", i)).RecentQuestions); got != MaxHistory {
			t.Errorf("u%d has %d questions, want %d", i, got, MaxHistory)
		}
	}
}
