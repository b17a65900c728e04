package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"supportbot/internal/compose"
	"supportbot/internal/domain/entities"
	pkgdiscord "supportbot/pkg/discord"
)

// handleTicketModalSubmit submits a new ticket. The form is updated (and the
// draft autosave armed) before the use case runs, so a failed submission
// keeps the draft; only a confirmed success clears it.
func (h *Handler) handleTicketModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	ctx := context.Background()
	user := interactionUser(i)
	sess := h.session(ctx, user.ID)
	lang := sess.lang.Language()

	title, body := pkgdiscord.ExtractTicketModalData(data)
	sess.restoreFor(ctx, compose.ModeNew)
	sess.edit(func(f *compose.Form) {
		if f.Mode != compose.ModeNew {
			f.Reset(compose.ModeNew)
		}
		f.Title = title
		f.Body = body
	})

	form := sess.view()
	ticket := &entities.Ticket{
		RequesterID: user.ID,
		CategoryID:  form.CategoryID,
		Title:       form.Title,
		Body:        form.Body,
		EntrySource: "discord",
	}
	if err := h.ticketUseCase.Create(ctx, ticket); err != nil {
		h.fail(s, i.Interaction, lang, err)
		return
	}

	// Reset first: a flush still pending from the edit above then snapshots
	// an empty form and skips, instead of re-writing the cleared draft.
	sess.resetForm(compose.ModeNew)
	sess.drafts.Clear(ctx)

	respondEphemeral(s, i.Interaction,
		h.translate(lang, "ticket.created", map[string]any{"id": ticket.ID}))
}
