package cache

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func fetchConst(v any, calls *int32) func(context.Context) (any, error) {
	return func(context.Context) (any, error) {
		atomic.AddInt32(calls, 1)
		return v, nil
	}
}

func TestGetServesFreshValueWithinTTL(t *testing.T) {
	s := New()
	key := NewKey("/api/auth/me", nil)
	var calls int32

	for i := 0; i < 3; i++ {
		v, err := s.Get(context.Background(), key, time.Hour, fetchConst("anvar", &calls))
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if v != "anvar" {
			t.Fatalf("value = %v", v)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("fetch calls = %d, want 1", n)
	}
}

func TestGetRefetchesWhenTTLZero(t *testing.T) {
	s := New()
	key := NewKey("/api/stations", nil)
	var calls int32

	for i := 0; i < 2; i++ {
		if _, err := s.Get(context.Background(), key, 0, fetchConst("x", &calls)); err != nil {
			t.Fatalf("get: %v", err)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("fetch calls = %d, want 2", n)
	}
}

func TestConcurrentGetsShareOneFetch(t *testing.T) {
	s := New()
	key := NewKey("/api/stations", nil)

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(context.Context) (any, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
		return "stations", nil
	}

	const readers = 5
	results := make(chan any, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := s.Get(context.Background(), key, 0, fetch)
			if err != nil {
				t.Errorf("get: %v", err)
			}
			results <- v
		}()
	}

	<-started
	// All readers are either queued on the in-flight call or about to join
	// it; give the stragglers a moment before letting the fetch finish.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for v := range results {
		if v != "stations" {
			t.Fatalf("reader saw %v", v)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("fetch calls = %d, want 1", n)
	}
}

func TestFailedRefetchKeepsPreviousValue(t *testing.T) {
	s := New()
	key := NewKey("/api/users", nil)
	var calls int32

	if _, err := s.Get(context.Background(), key, time.Hour, fetchConst("v1", &calls)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s.Invalidate(NewKey("/api/users", nil))

	boom := errors.New("server yiqildi")
	v, err := s.Get(context.Background(), key, time.Hour, func(context.Context) (any, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if v != "v1" {
		t.Fatalf("value = %v, want previous good value", v)
	}

	e, ok := s.Inspect(key)
	if !ok {
		t.Fatal("entry dropped after failed refetch")
	}
	if e.Value != "v1" || !e.HasValue {
		t.Fatalf("entry value = %+v", e)
	}
	if e.Err == nil || !e.Stale {
		t.Fatalf("entry should carry error and stay stale: %+v", e)
	}
}

func TestInvalidatePrefixMarksAllVariants(t *testing.T) {
	s := New()
	byStation := NewKey("/api/checks", url.Values{"stationId": {"1"}})
	byStatus := NewKey("/api/checks", url.Values{"status": {"pending"}})
	operator := NewKey("/api/stats/operator/7", nil)
	users := NewKey("/api/users", nil)

	for _, k := range []Key{byStation, byStatus, operator, users} {
		s.SetValue(k, "v")
	}

	if n := s.Invalidate(NewKey("/api/checks", nil)); n != 2 {
		t.Fatalf("checks prefix matched %d entries, want 2", n)
	}
	if n := s.Invalidate(NewKey("/api/stats", nil)); n != 1 {
		t.Fatalf("stats prefix matched %d entries, want 1", n)
	}

	if e, _ := s.Inspect(users); e.Stale {
		t.Fatal("unrelated key went stale")
	}
	if e, _ := s.Inspect(byStation); !e.Stale {
		t.Fatal("filtered variant not stale")
	}
}

func TestClearAllForcesRefetch(t *testing.T) {
	s := New()
	key := NewKey("/api/users", nil)
	var calls int32

	if _, err := s.Get(context.Background(), key, time.Hour, fetchConst("a", &calls)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s.ClearAll()

	if _, ok := s.Snapshot(key); ok {
		t.Fatal("snapshot survived ClearAll")
	}
	if _, err := s.Get(context.Background(), key, time.Hour, fetchConst("b", &calls)); err != nil {
		t.Fatalf("get: %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("fetch calls = %d, want 2 (refetch after clear)", n)
	}
}

func TestClearAllDiscardsInFlightResult(t *testing.T) {
	s := New()
	key := NewKey("/api/checks", nil)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.Get(context.Background(), key, 0, func(context.Context) (any, error) {
			close(started)
			<-release
			return "late", nil
		})
	}()

	<-started
	s.ClearAll()
	close(release)
	<-done

	if _, ok := s.Inspect(key); ok {
		t.Fatal("late fetch result written into a cleared store")
	}
}

func TestSetValueIsFreshAndAuthoritative(t *testing.T) {
	s := New()
	key := NewKey("/api/auth/me", nil)
	s.SetValue(key, "dilshod")

	var calls int32
	v, err := s.Get(context.Background(), key, time.Hour, fetchConst("other", &calls))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "dilshod" {
		t.Fatalf("value = %v", v)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("fetch ran despite a fresh direct write")
	}
}

func TestSubscribersSeeWritesAndInvalidations(t *testing.T) {
	s := New()
	key := NewKey("/api/messages", nil)

	var mu sync.Mutex
	var seen []string
	unsub := s.Subscribe(func(k Key) {
		mu.Lock()
		seen = append(seen, k.String())
		mu.Unlock()
	})

	s.SetValue(key, "m")
	s.Invalidate(NewKey("/api/messages", nil))
	unsub()
	s.SetValue(key, "m2")

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 {
		t.Fatalf("notifications = %v, want write + invalidation", seen)
	}
}
