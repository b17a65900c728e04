package localization

import (
	"context"
	"sync"

	"supportbot/internal/ports/output"
)

// Store holds the active language for one session and persists it under a
// fixed key. It is the only mutable state of the localization engine:
// consumers either read it on demand or subscribe to changes, so nothing
// downstream caches a stale language.
type Store struct {
	kv  output.KeyValue
	key string

	mu      sync.RWMutex
	lang    Language
	subs    map[int]func(Language)
	nextSub int
}

// NewStore loads the persisted language for key. An absent, unreadable or
// unrecognized value falls back to the default language; loading never fails.
func NewStore(ctx context.Context, kv output.KeyValue, key string) *Store {
	s := &Store{
		kv:   kv,
		key:  key,
		lang: Default,
		subs: make(map[int]func(Language)),
	}
	if raw, err := kv.Get(ctx, key); err == nil {
		if l, ok := Parse(raw); ok {
			s.lang = l
		}
	}
	return s
}

// Language returns the active language.
func (s *Store) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// SetLanguage switches the active language and persists it best-effort: a
// storage failure is swallowed and the in-memory value still takes effect
// for the rest of the session. Subscribers are notified after the switch.
func (s *Store) SetLanguage(ctx context.Context, lang Language) {
	if _, ok := Parse(string(lang)); !ok {
		return
	}
	s.mu.Lock()
	s.lang = lang
	subs := make([]func(Language), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	_ = s.kv.Set(ctx, s.key, string(lang))

	for _, fn := range subs {
		fn(lang)
	}
}

// Subscribe registers fn to run on every language change and returns a
// cancel func.
func (s *Store) Subscribe(fn func(Language)) func() {
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

// PersistedLanguage reads the stored language once, without a Store or its
// subscription machinery. It exists for contexts evaluated outside the
// normal interaction flow (crash text, shutdown messages) and applies the
// same fallback rule as NewStore.
func PersistedLanguage(ctx context.Context, kv output.KeyValue, key string) Language {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return Default
	}
	if l, ok := Parse(raw); ok {
		return l
	}
	return Default
}
