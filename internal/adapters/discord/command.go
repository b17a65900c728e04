package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"supportbot/internal/compose"
	"supportbot/internal/localization"
	pkgdiscord "supportbot/pkg/discord"
)

// HandleCommand routes the /support subcommands.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	switch data.Options[0].Name {
	case "faq":
		h.handleFaqCommand(s, i)
	case "ticket":
		h.handleTicketCommand(s, i)
	case "reply":
		h.handleReplyCommand(s, i)
	case "mytickets":
		h.handleMyTicketsCommand(s, i)
	case "language":
		h.handleLanguageCommand(s, i)
	}
}

func (h *Handler) handleFaqCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	lang := h.language(ctx, interactionUser(i).ID)

	categories, err := h.faqUseCase.Categories(ctx)
	if err != nil {
		h.fail(s, i.Interaction, lang, err)
		return
	}
	if len(categories) == 0 {
		respondEphemeral(s, i.Interaction, h.translate(lang, "faq.empty", nil))
		return
	}

	options := make([]discordgo.SelectMenuOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, discordgo.SelectMenuOption{
			Label: truncateLabel(localization.Text(c.Name, c.NameI18n, lang), 100),
			Value: fmt.Sprintf("faqcat_%d", c.ID),
		})
	}

	content := h.translate(lang, "faq.pick_category", nil)
	respondEphemeralSelect(s, i.Interaction, content, "support_faq_category_select", content, options)
}

func (h *Handler) handleTicketCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	sess := h.session(ctx, interactionUser(i).ID)
	lang := sess.lang.Language()

	notice := sess.restoreFor(ctx, compose.ModeNew)

	categories, err := h.ticketUseCase.Categories(ctx)
	if err != nil {
		h.fail(s, i.Interaction, lang, err)
		return
	}
	if len(categories) == 0 {
		respondEphemeral(s, i.Interaction, h.translate(lang, "errors.generic", nil))
		return
	}

	options := make([]discordgo.SelectMenuOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, discordgo.SelectMenuOption{
			Label: truncateLabel(localization.Text(c.Name, c.NameI18n, lang), 100),
			Value: fmt.Sprintf("ticketcat_%d", c.ID),
		})
	}

	content := h.translate(lang, "ticket.pick_category", nil)
	if notice == compose.NoticeRestoredNew {
		content = h.translate(lang, string(notice), nil) + "\n" + content
	}
	respondEphemeralSelect(s, i.Interaction, content, "support_ticket_category_select",
		h.translate(lang, "ticket.pick_category", nil), options)
}

func (h *Handler) handleReplyCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)
	sess := h.session(ctx, user.ID)
	lang := sess.lang.Language()

	notice := sess.restoreFor(ctx, compose.ModeReply)

	tickets, err := h.ticketUseCase.TicketsByRequester(ctx, user.ID)
	if err != nil {
		h.fail(s, i.Interaction, lang, err)
		return
	}
	if len(tickets) == 0 {
		respondEphemeral(s, i.Interaction, h.translate(lang, "ticket.none", nil))
		return
	}

	if len(tickets) > 25 {
		tickets = tickets[:25]
	}
	options := make([]discordgo.SelectMenuOption, 0, len(tickets))
	for _, t := range tickets {
		options = append(options, discordgo.SelectMenuOption{
			Label:       truncateLabel(fmt.Sprintf("#%d %s", t.ID, t.Title), 100),
			Value:       fmt.Sprintf("ticket_%d", t.ID),
			Description: h.translate(lang, statusKey(t.Status), nil),
		})
	}

	content := h.translate(lang, "ticket.pick_target", nil)
	if notice == compose.NoticeRestoredReply {
		content = h.translate(lang, string(notice), nil) + "\n" + content
	}
	respondEphemeralSelect(s, i.Interaction, content, "support_reply_select",
		h.translate(lang, "ticket.pick_target", nil), options)
}

func (h *Handler) handleMyTicketsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	user := interactionUser(i)
	lang := h.language(ctx, user.ID)

	tickets, err := h.ticketUseCase.TicketsByRequester(ctx, user.ID)
	if err != nil {
		h.fail(s, i.Interaction, lang, err)
		return
	}
	if len(tickets) == 0 {
		respondEphemeral(s, i.Interaction, h.translate(lang, "ticket.none", nil))
		return
	}

	lines := make([]string, 0, len(tickets))
	for _, t := range tickets {
		lines = append(lines, fmt.Sprintf("#%d [%s] %s",
			t.ID, h.translate(lang, statusKey(t.Status), nil), t.Title))
	}
	header := h.translate(lang, "ticket.list_header", map[string]any{"name": resolveDisplayName(i)})
	respondEphemeralEmbed(s, i.Interaction, pkgdiscord.BuildTicketListEmbed(header, lines))
}

func (h *Handler) handleLanguageCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	lang := h.language(ctx, interactionUser(i).ID)

	languages := localization.Supported()
	options := make([]discordgo.SelectMenuOption, 0, len(languages))
	for _, l := range languages {
		options = append(options, discordgo.SelectMenuOption{
			Label:   l.Native(),
			Value:   l.String(),
			Default: l == lang,
		})
	}

	content := h.translate(lang, "language.pick", nil)
	respondEphemeralSelect(s, i.Interaction, content, "support_lang_select", content, options)
}
