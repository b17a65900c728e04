package compose

import (
	"context"
	"sync"
	"time"

	"supportbot/internal/ports/output"
)

const (
	// DebounceDelay is the trailing-edge autosave delay: only the last
	// change in a burst of edits is persisted.
	DebounceDelay = 450 * time.Millisecond

	// WriteFloor is the minimum interval between two actual storage
	// writes, measured from the last successful one. A debounce tick that
	// would violate it is skipped; the next field change re-arms the timer.
	WriteFloor = 500 * time.Millisecond
)

// Notice tells the caller which kind of draft was applied on restore.
type Notice string

const (
	NoticeNone          Notice = ""
	NoticeRestoredNew   Notice = "draft.restored_new"
	NoticeRestoredReply Notice = "draft.restored_reply"
)

// Store persists one compose form to a single key-value slot with debounced
// autosave and a guarded one-shot restore. Every storage failure degrades to
// "no draft": nothing is surfaced to the user and the form keeps working
// purely in memory.
type Store struct {
	kv       output.KeyValue
	key      string
	snapshot func() Record
	debounce time.Duration
	floor    time.Duration
	now      func() time.Time

	mu        sync.Mutex
	timer     *time.Timer
	lastWrite time.Time
	closed    bool
}

type StoreOption func(*Store)

// WithIntervals overrides the debounce delay and write floor (tests).
func WithIntervals(debounce, floor time.Duration) StoreOption {
	return func(s *Store) {
		s.debounce = debounce
		s.floor = floor
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore builds a draft store over one storage key. snapshot is called at
// timer fire time so a write always reflects the current field state, never
// a value captured when the edit happened.
func NewStore(kv output.KeyValue, key string, snapshot func() Record, opts ...StoreOption) *Store {
	s := &Store{
		kv:       kv,
		key:      key,
		snapshot: snapshot,
		debounce: DebounceDelay,
		floor:    WriteFloor,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore reads the stored draft and applies it to form when the guard
// holds. It must run once, before the first Touch. Parse failures and
// structural mismatches are silently treated as "no draft". A guard
// violation leaves the stored record in place, unapplied.
//
// Guard: a "new" draft applies only to a form with empty title and body; a
// "reply" draft only when the body is empty and no target is selected.
func (s *Store) Restore(ctx context.Context, form *Form) (Notice, bool) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return NoticeNone, false
	}
	rec, ok := decodeRecord([]byte(raw))
	if !ok {
		return NoticeNone, false
	}

	switch rec.Mode {
	case ModeNew:
		if form.Title != "" || form.Body != "" {
			return NoticeNone, false
		}
		rec.apply(form)
		return NoticeRestoredNew, true
	case ModeReply:
		if form.Body != "" || form.TargetTicketID != nil {
			return NoticeNone, false
		}
		rec.apply(form)
		return NoticeRestoredReply, true
	}
	return NoticeNone, false
}

// Touch notes a field change and (re)arms the debounce timer. Calling it
// repeatedly within the delay coalesces into one write of the final state.
func (s *Store) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flush)
}

func (s *Store) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.timer = nil

	now := s.now()
	if !s.lastWrite.IsZero() && now.Sub(s.lastWrite) < s.floor {
		// Floor violated: skip this tick. No rescheduling needed, the
		// next field change re-arms the debounce.
		return
	}

	rec := s.snapshot()
	rec.SavedAt = now
	if !rec.meaningful() {
		return
	}
	data, err := encodeRecord(rec)
	if err != nil {
		return
	}
	if err := s.kv.Set(context.Background(), s.key, string(data)); err != nil {
		return
	}
	s.lastWrite = now
}

// Clear deletes the stored draft. It is called only after a confirmed
// successful submission; failed submits, mode switches and navigation keep
// the draft.
func (s *Store) Clear(ctx context.Context) {
	_ = s.kv.Delete(ctx, s.key)
}

// Close cancels any pending autosave so nothing writes after teardown.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
