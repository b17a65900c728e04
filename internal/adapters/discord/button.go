package discord

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"supportbot/internal/compose"
	"supportbot/internal/localization"
	pkgdiscord "supportbot/pkg/discord"
)

// HandleComposeButton opens the new-ticket modal for the category encoded in
// the button's CustomID. The category template is inserted into the form
// first, so the modal inputs show template plus any restored draft content.
func (h *Handler) HandleComposeButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)
	sess := h.session(ctx, user.ID)
	lang := sess.lang.Language()

	idStr, ok := strings.CutPrefix(i.MessageComponentData().CustomID, "support_ticket_compose_")
	if !ok {
		return
	}
	categoryID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return
	}

	category, err := h.ticketUseCase.Category(ctx, categoryID)
	if err != nil {
		h.fail(s, i.Interaction, lang, err)
		return
	}

	profile, err := h.users.FindByDiscordID(ctx, user.ID)
	if err != nil {
		// Placeholders render empty when the profile is unavailable.
		log.Printf("❌ Profile lookup failed for %s: %v", user.ID, err)
		profile = nil
	}
	tctx := compose.ContextFromProfile(profile)

	titleTpl := localization.Text(category.FormTitleTemplate, category.FormTitleTemplateI18n, lang)
	bodyTpl := localization.Text(category.FormTemplate, category.FormTemplateI18n, lang)

	sess.restoreFor(ctx, compose.ModeNew)
	sess.edit(func(f *compose.Form) {
		if f.Mode != compose.ModeNew {
			f.Reset(compose.ModeNew)
		}
		f.CategoryID = &categoryID
		f.InsertTemplate(titleTpl, bodyTpl, tctx)
	})

	form := sess.view()
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: pkgdiscord.TicketModalData(
			"support_ticket_modal",
			h.translate(lang, "ticket.modal.new_title", nil),
			h.translate(lang, "ticket.modal.title_label", nil),
			h.translate(lang, "ticket.modal.body_label", nil),
			form.Title,
			form.Body,
		),
	})
}
