// Package cache is a keyed, invalidation-driven cache of remote resources.
// Reads are stale-while-revalidate: a failed refetch never evicts the last
// good value, and concurrent reads of one key share a single fetch.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Store holds cached remote state for one session. It is a process-wide
// singleton: built once at startup, cleared wholesale on logout.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	gen     uint64
	subs    map[int]func(Key)
	nextSub int
	group   singleflight.Group
	now     func() time.Time
}

type entry struct {
	key       Key
	value     any
	hasValue  bool
	err       error
	stale     bool
	fetchedAt time.Time
}

// Entry is a point-in-time view of one cached slot.
type Entry struct {
	Value     any
	HasValue  bool
	Err       error
	Stale     bool
	FetchedAt time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		entries: make(map[string]*entry),
		subs:    make(map[int]func(Key)),
		now:     time.Now,
	}
}

// Get returns the cached value when it is fresh within ttl, otherwise fetches
// it. A ttl of zero means every call refetches. Concurrent callers of the same
// key collapse into one underlying fetch. On fetch failure the previous good
// value, if any, is returned alongside the error.
func (s *Store) Get(ctx context.Context, key Key, ttl time.Duration, fetch func(context.Context) (any, error)) (any, error) {
	ks := key.String()

	s.mu.Lock()
	gen := s.gen
	if e, ok := s.entries[ks]; ok && e.hasValue && !e.stale && e.err == nil &&
		ttl > 0 && s.now().Sub(e.fetchedAt) < ttl {
		v := e.value
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	// The generation is part of the flight key so that calls issued after a
	// ClearAll never share a fetch that started before it.
	flight := fmt.Sprintf("%s#%d", ks, gen)
	v, err, _ := s.group.Do(flight, func() (any, error) {
		val, ferr := fetch(ctx)
		if ferr != nil {
			s.recordError(gen, key, ferr)
			return nil, ferr
		}
		s.record(gen, key, val)
		return val, nil
	})
	if err != nil {
		if prev, ok := s.Snapshot(key); ok {
			return prev, err
		}
		return nil, err
	}
	return v, nil
}

// SetValue writes an authoritative value directly, bypassing the fetcher.
func (s *Store) SetValue(key Key, value any) {
	s.record(s.generation(), key, value)
}

// Invalidate marks every entry under the prefix as stale and notifies
// subscribers. Returns how many entries matched.
func (s *Store) Invalidate(prefix Key) int {
	s.mu.Lock()
	var matched []Key
	for _, e := range s.entries {
		if e.key.HasPrefix(prefix) {
			e.stale = true
			matched = append(matched, e.key)
		}
	}
	s.mu.Unlock()

	for _, k := range matched {
		s.notify(k)
	}
	return len(matched)
}

// ClearAll drops every entry and detaches all in-flight fetches, so one
// actor's data can never leak into the next session.
func (s *Store) ClearAll() {
	s.mu.Lock()
	s.gen++
	s.entries = make(map[string]*entry)
	s.mu.Unlock()
}

// Snapshot returns the last good value for a key, stale or not.
func (s *Store) Snapshot(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key.String()]; ok && e.hasValue {
		return e.value, true
	}
	return nil, false
}

// Inspect exposes the full slot state. Mostly useful to views and tests.
func (s *Store) Inspect(key Key) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key.String()]
	if !ok {
		return Entry{}, false
	}
	return Entry{
		Value:     e.value,
		HasValue:  e.hasValue,
		Err:       e.err,
		Stale:     e.stale,
		FetchedAt: e.fetchedAt,
	}, true
}

// Subscribe registers an observer called whenever a key is written or
// invalidated. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(Key)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Store) record(gen uint64, key Key, value any) {
	s.mu.Lock()
	if s.gen != gen {
		// The store was cleared while the fetch was in flight; discard.
		s.mu.Unlock()
		return
	}
	ks := key.String()
	e, ok := s.entries[ks]
	if !ok {
		e = &entry{key: key}
		s.entries[ks] = e
	}
	e.value = value
	e.hasValue = true
	e.err = nil
	e.stale = false
	e.fetchedAt = s.now()
	s.mu.Unlock()

	s.notify(key)
}

// recordError attaches the failure to the key without touching the previous
// good value.
func (s *Store) recordError(gen uint64, key Key, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return
	}
	ks := key.String()
	e, ok := s.entries[ks]
	if !ok {
		e = &entry{key: key}
		s.entries[ks] = e
	}
	e.err = err
	e.stale = true
}

func (s *Store) notify(key Key) {
	s.mu.Lock()
	fns := make([]func(Key), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
}

// GetAs is a typed wrapper over Get.
func GetAs[T any](ctx context.Context, s *Store, key Key, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	v, err := s.Get(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, err
	}
	return t, err
}
