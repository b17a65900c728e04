package compose

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supportbot/internal/domain"
)

// fakeKV is a test-local in-memory KeyValue that counts writes.
type fakeKV struct {
	mu     sync.Mutex
	data   map[string]string
	writes int
	broken bool
}

func newFakeKV() *fakeKV { return &fakeKV{data: make(map[string]string)} }

func (k *fakeKV) Get(_ context.Context, key string) (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.broken {
		return "", errors.New("storage unavailable")
	}
	v, ok := k.data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

func (k *fakeKV) Set(_ context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.broken {
		return errors.New("storage unavailable")
	}
	k.data[key] = value
	k.writes++
	return nil
}

func (k *fakeKV) Delete(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.data, key)
	return nil
}

func (k *fakeKV) writeCount() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.writes
}

func (k *fakeKV) raw(key string) (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.data[key]
	return v, ok
}

const testKey = "draft:test"

// harness binds a form and a store with short test intervals.
type harness struct {
	kv    *fakeKV
	form  *Form
	mu    sync.Mutex
	store *Store
}

func newHarness(t *testing.T, kv *fakeKV) *harness {
	t.Helper()
	return newHarnessIntervals(t, kv, 20*time.Millisecond, 60*time.Millisecond)
}

func newHarnessIntervals(t *testing.T, kv *fakeKV, debounce, floor time.Duration) *harness {
	t.Helper()
	h := &harness{kv: kv, form: &Form{Mode: ModeNew}}
	h.store = NewStore(kv, testKey, h.snapshot, WithIntervals(debounce, floor))
	t.Cleanup(h.store.Close)
	return h
}

func (h *harness) snapshot() Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Record{
		Mode:           h.form.Mode,
		CategoryID:     h.form.CategoryID,
		TargetTicketID: h.form.TargetTicketID,
		Title:          h.form.Title,
		Body:           h.form.Body,
	}
}

func (h *harness) edit(fn func(f *Form)) {
	h.mu.Lock()
	fn(h.form)
	h.mu.Unlock()
	h.store.Touch()
}

func waitFlush() { time.Sleep(60 * time.Millisecond) }

func TestDraftRoundTrip(t *testing.T) {
	kv := newFakeKV()
	h := newHarness(t, kv)
	h.edit(func(f *Form) { f.Title = "T"; f.Body = "B" })
	waitFlush()
	require.Equal(t, 1, kv.writeCount())

	// Fresh form, empty: the guard holds and the draft applies.
	fresh := &Form{Mode: ModeNew}
	restored := NewStore(kv, testKey, func() Record { return Record{} })
	defer restored.Close()
	notice, applied := restored.Restore(context.Background(), fresh)
	require.True(t, applied)
	assert.Equal(t, NoticeRestoredNew, notice)
	assert.Equal(t, "T", fresh.Title)
	assert.Equal(t, "B", fresh.Body)
}

func TestRestoreGuardBlocksTypedForm(t *testing.T) {
	kv := newFakeKV()
	h := newHarness(t, kv)
	h.edit(func(f *Form) { f.Title = "T"; f.Body = "B" })
	waitFlush()

	// Body already typed: guard blocks, stored record stays untouched.
	typed := &Form{Mode: ModeNew, Body: "already typing"}
	s := NewStore(kv, testKey, func() Record { return Record{} })
	defer s.Close()
	notice, applied := s.Restore(context.Background(), typed)
	assert.False(t, applied)
	assert.Equal(t, NoticeNone, notice)
	assert.Equal(t, "already typing", typed.Body)

	raw, ok := kv.raw(testKey)
	require.True(t, ok)
	var w map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	assert.Equal(t, "T", w["title"])
	assert.Equal(t, "B", w["body"])
}

func TestReplyGuardRequiresNoTarget(t *testing.T) {
	kv := newFakeKV()
	h := newHarness(t, kv)
	h.edit(func(f *Form) {
		f.Reset(ModeReply)
		id := int64(42)
		f.TargetTicketID = &id
		f.Body = "reply draft"
	})
	waitFlush()

	target := int64(7)
	form := &Form{Mode: ModeReply, TargetTicketID: &target}
	s := NewStore(kv, testKey, func() Record { return Record{} })
	defer s.Close()
	_, applied := s.Restore(context.Background(), form)
	assert.False(t, applied)

	form = &Form{Mode: ModeReply}
	notice, applied := s.Restore(context.Background(), form)
	require.True(t, applied)
	assert.Equal(t, NoticeRestoredReply, notice)
	require.NotNil(t, form.TargetTicketID)
	assert.EqualValues(t, 42, *form.TargetTicketID)
	assert.Equal(t, "reply draft", form.Body)
}

func TestSingleSlotOverwrite(t *testing.T) {
	kv := newFakeKV()
	h := newHarness(t, kv)
	h.edit(func(f *Form) { f.Title = "old new-mode draft"; f.Body = "old" })
	waitFlush()
	time.Sleep(40 * time.Millisecond) // clear the write floor

	h.edit(func(f *Form) {
		f.Reset(ModeReply)
		id := int64(9)
		f.TargetTicketID = &id
		f.Body = "newest reply"
	})
	waitFlush()

	// Reloading an empty new-mode form must NOT yield the old new draft:
	// only the most recent record exists.
	form := &Form{Mode: ModeNew}
	s := NewStore(kv, testKey, func() Record { return Record{} })
	defer s.Close()
	notice, applied := s.Restore(context.Background(), form)
	require.True(t, applied)
	assert.Equal(t, NoticeRestoredReply, notice)
	assert.Equal(t, ModeReply, form.Mode)
	assert.Equal(t, "newest reply", form.Body)
	assert.Empty(t, form.Title)
}

func TestDebounceCoalesces(t *testing.T) {
	kv := newFakeKV()
	h := newHarness(t, kv)

	h.edit(func(f *Form) { f.Body = "h" })
	h.edit(func(f *Form) { f.Body = "he" })
	h.edit(func(f *Form) { f.Body = "hello" })
	waitFlush()

	require.Equal(t, 1, kv.writeCount())
	raw, _ := kv.raw(testKey)
	var w map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &w))
	assert.Equal(t, "hello", w["body"])
}

func TestWriteFloorCollapsesCloseWrites(t *testing.T) {
	kv := newFakeKV()
	h := newHarnessIntervals(t, kv, 20*time.Millisecond, 150*time.Millisecond)

	h.edit(func(f *Form) { f.Body = "first" })
	waitFlush()
	require.Equal(t, 1, kv.writeCount())

	// Second burst lands within the floor of the first write: skipped.
	h.edit(func(f *Form) { f.Body = "second" })
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, 1, kv.writeCount())

	// A later change, past the floor, persists again.
	time.Sleep(120 * time.Millisecond)
	h.edit(func(f *Form) { f.Body = "third" })
	waitFlush()
	assert.Equal(t, 2, kv.writeCount())
}

func TestMeaninglessDraftNotPersisted(t *testing.T) {
	kv := newFakeKV()
	h := newHarness(t, kv)

	h.edit(func(f *Form) { f.Body = "   \n " })
	waitFlush()
	assert.Equal(t, 0, kv.writeCount())

	// In new mode a title alone is meaningful.
	h.edit(func(f *Form) { f.Title = "only a title" })
	waitFlush()
	assert.Equal(t, 1, kv.writeCount())
}

func TestCorruptedDraftIgnored(t *testing.T) {
	kv := newFakeKV()
	s := NewStore(kv, testKey, func() Record { return Record{} })
	defer s.Close()

	for _, raw := range []string{
		"{not json",
		`{"title":"T","body":"B","savedAt":1}`,                        // missing mode
		`{"mode":"weird","body":"B","savedAt":1}`,                     // unknown mode
		`{"mode":"new","title":"T","body":"B"}`,                       // missing savedAt
		`{"mode":"new","title":"T","body":"B","savedAt":1,"x":true}`,  // extra field
		`{"mode":"reply","title":"T","body":"B","savedAt":1}`,         // field of the other mode
	} {
		require.NoError(t, kv.Set(context.Background(), testKey, raw))
		form := &Form{Mode: ModeNew}
		notice, applied := s.Restore(context.Background(), form)
		assert.False(t, applied, "raw=%s", raw)
		assert.Equal(t, NoticeNone, notice)
		assert.Empty(t, form.Body)
	}
}

func TestStorageFailureTreatedAsAbsent(t *testing.T) {
	kv := newFakeKV()
	kv.broken = true
	s := NewStore(kv, testKey, func() Record { return Record{} })
	defer s.Close()

	form := &Form{Mode: ModeNew}
	_, applied := s.Restore(context.Background(), form)
	assert.False(t, applied)
}

func TestClearDeletesDraft(t *testing.T) {
	kv := newFakeKV()
	h := newHarness(t, kv)
	h.edit(func(f *Form) { f.Body = "B" })
	waitFlush()
	_, ok := kv.raw(testKey)
	require.True(t, ok)

	h.store.Clear(context.Background())
	_, ok = kv.raw(testKey)
	assert.False(t, ok)
}

func TestCloseCancelsPendingWrite(t *testing.T) {
	kv := newFakeKV()
	h := newHarness(t, kv)
	h.edit(func(f *Form) { f.Body = "about to navigate away" })
	h.store.Close()
	waitFlush()
	assert.Equal(t, 0, kv.writeCount())
}
