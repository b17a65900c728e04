package discord

import (
	"context"
	"fmt"
	"sync"

	"supportbot/internal/compose"
	"supportbot/internal/localization"
	"supportbot/internal/ports/output"
)

// session is the per-user interaction state: the active language and one
// compose form with its draft store. Both persist under user-scoped keys so
// a session survives bot restarts.
type session struct {
	userID string
	lang   *localization.Store

	formMu sync.Mutex
	form   compose.Form

	drafts *compose.Store

	restoreMu sync.Mutex
	restored  bool
}

func langKey(userID string) string { return fmt.Sprintf("support:lang:%s", userID) }

func draftKey(userID string) string { return fmt.Sprintf("support:draft:v2:%s", userID) }

func newSession(ctx context.Context, kv output.KeyValue, userID string) *session {
	s := &session{
		userID: userID,
		lang:   localization.NewStore(ctx, kv, langKey(userID)),
	}
	s.drafts = compose.NewStore(kv, draftKey(userID), s.snapshot)
	return s
}

func (s *session) snapshot() compose.Record {
	s.formMu.Lock()
	defer s.formMu.Unlock()
	return compose.Record{
		Mode:           s.form.Mode,
		CategoryID:     s.form.CategoryID,
		TargetTicketID: s.form.TargetTicketID,
		Title:          s.form.Title,
		Body:           s.form.Body,
	}
}

// restoreFor prepares the form for entering a compose flow. Every compose
// entry point must call it before the first edit, so the stored draft is
// restored before any autosave timer is armed. The draft is applied at most
// once per session lifetime, and only when its mode matches the flow being
// entered: a mismatching draft is rolled back, stays stored, and is offered
// again when its own flow opens.
func (s *session) restoreFor(ctx context.Context, mode compose.Mode) compose.Notice {
	s.restoreMu.Lock()
	defer s.restoreMu.Unlock()
	s.formMu.Lock()
	defer s.formMu.Unlock()

	if !s.restored {
		notice, applied := s.drafts.Restore(ctx, &s.form)
		if applied && s.form.Mode != mode {
			// Wrong flow for this draft: put it back.
			s.form.Reset(mode)
			return compose.NoticeNone
		}
		s.restored = true
		if s.form.Mode != mode {
			s.form.Reset(mode)
		}
		return notice
	}

	if s.form.Mode != mode {
		s.form.Reset(mode)
	}
	return compose.NoticeNone
}

// edit mutates the form under its lock and arms the autosave timer. Touch
// must run after the lock is released: the flush callback takes the draft
// store's own lock and then snapshots the form.
func (s *session) edit(fn func(*compose.Form)) {
	s.formMu.Lock()
	fn(&s.form)
	s.formMu.Unlock()
	s.drafts.Touch()
}

// view returns a copy of the form.
func (s *session) view() compose.Form {
	s.formMu.Lock()
	defer s.formMu.Unlock()
	return s.form
}

// resetForm clears the form after a successful submission. It must run
// before Store.Clear so a pending flush sees the emptied form and skips.
func (s *session) resetForm(mode compose.Mode) {
	s.formMu.Lock()
	s.form.Reset(mode)
	s.formMu.Unlock()
}

func (s *session) close() {
	s.drafts.Close()
}
