package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"supportbot/internal/compose"
	"supportbot/internal/domain"
	pkgdiscord "supportbot/pkg/discord"
)

func (h *Handler) handleReplyModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	ctx := context.Background()
	user := interactionUser(i)
	sess := h.session(ctx, user.ID)
	lang := sess.lang.Language()

	body := pkgdiscord.ExtractReplyModalData(data)
	sess.restoreFor(ctx, compose.ModeReply)
	sess.edit(func(f *compose.Form) {
		if f.Mode != compose.ModeReply {
			f.Reset(compose.ModeReply)
		}
		f.Body = body
	})

	form := sess.view()
	if form.TargetTicketID == nil {
		h.fail(s, i.Interaction, lang, domain.ErrReplyTargetRequired)
		return
	}

	ticket, err := h.ticketUseCase.Reply(ctx, *form.TargetTicketID, user.ID, resolveDisplayName(i), form.Body)
	if err != nil {
		h.fail(s, i.Interaction, lang, err)
		return
	}

	sess.resetForm(compose.ModeReply)
	sess.drafts.Clear(ctx)

	respondEphemeral(s, i.Interaction,
		h.translate(lang, "ticket.reply_posted", map[string]any{"id": ticket.ID}))
}
