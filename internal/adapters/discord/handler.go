package discord

import (
	"context"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"supportbot/internal/localization"
	"supportbot/internal/ports/input"
	"supportbot/internal/ports/output"
	pkgdiscord "supportbot/pkg/discord"
)

// Handler handles Discord interactions using use cases. It owns one session
// per user, created lazily on the user's first interaction.
type Handler struct {
	faqUseCase    input.FaqUseCase
	ticketUseCase input.TicketUseCase
	users         output.UserRepository
	translator    output.T
	kv            output.KeyValue

	mu       sync.Mutex
	sessions map[string]*session
}

// NewHandler creates a Handler.
func NewHandler(
	faqUseCase input.FaqUseCase,
	ticketUseCase input.TicketUseCase,
	users output.UserRepository,
	translator output.T,
	kv output.KeyValue,
) *Handler {
	return &Handler{
		faqUseCase:    faqUseCase,
		ticketUseCase: ticketUseCase,
		users:         users,
		translator:    translator,
		kv:            kv,
		sessions:      make(map[string]*session),
	}
}

func (h *Handler) session(ctx context.Context, userID string) *session {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sess, ok := h.sessions[userID]; ok {
		return sess
	}
	sess := newSession(ctx, h.kv, userID)
	h.sessions[userID] = sess
	return sess
}

// CloseSessions cancels every pending autosave. Called once on shutdown.
func (h *Handler) CloseSessions() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sess := range h.sessions {
		sess.close()
	}
}

// language returns the user's active language: the live session value when
// one exists, otherwise the persisted choice. Browse-only interactions read
// it through here without building a session.
func (h *Handler) language(ctx context.Context, userID string) localization.Language {
	h.mu.Lock()
	sess, ok := h.sessions[userID]
	h.mu.Unlock()
	if ok {
		return sess.lang.Language()
	}
	return localization.PersistedLanguage(ctx, h.kv, langKey(userID))
}

func (h *Handler) translate(lang localization.Language, key string, data map[string]any) string {
	return h.translator.T(lang.String(), key, data)
}

// fail reports err to the user in their language and logs it.
func (h *Handler) fail(s *discordgo.Session, i *discordgo.Interaction, lang localization.Language, err error) {
	log.Printf("❌ Interaction failed: %v", err)
	respondEphemeral(s, i, h.translate(lang, pkgdiscord.DomainErrorKey(err), nil))
}
