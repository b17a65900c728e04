package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"supportbot/internal/compose"
	"supportbot/internal/localization"
	pkgdiscord "supportbot/pkg/discord"
)

// selectedID parses the "<prefix><id>" value of a component selection.
func selectedID(i *discordgo.InteractionCreate, prefix string) (int64, bool) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return 0, false
	}
	idStr, ok := strings.CutPrefix(data.Values[0], prefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *Handler) HandleFaqCategorySelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	lang := h.language(ctx, interactionUser(i).ID)

	categoryID, ok := selectedID(i, "faqcat_")
	if !ok {
		return
	}
	faqs, err := h.faqUseCase.FaqsByCategory(ctx, categoryID)
	if err != nil {
		h.fail(s, i.Interaction, lang, err)
		return
	}
	if len(faqs) == 0 {
		respondEphemeral(s, i.Interaction, h.translate(lang, "faq.empty", nil))
		return
	}

	if len(faqs) > 25 {
		faqs = faqs[:25]
	}
	options := make([]discordgo.SelectMenuOption, 0, len(faqs))
	for _, f := range faqs {
		label := localization.Text(f.Title, f.TitleI18n, lang)
		if f.IsPopular {
			label = "⭐ " + label
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: truncateLabel(label, 100),
			Value: fmt.Sprintf("faq_%d", f.ID),
		})
	}

	content := h.translate(lang, "faq.pick_article", nil)
	respondEphemeralSelect(s, i.Interaction, content, "support_faq_select", content, options)
}

func (h *Handler) HandleFaqSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	lang := h.language(ctx, interactionUser(i).ID)

	faqID, ok := selectedID(i, "faq_")
	if !ok {
		return
	}
	faq, err := h.faqUseCase.Faq(ctx, faqID)
	if err != nil {
		h.fail(s, i.Interaction, lang, err)
		return
	}

	body := pkgdiscord.RenderBlocks(localization.List(faq.Blocks, faq.BlocksI18n, lang))
	if body == "" {
		body = localization.Text(faq.Body, faq.BodyI18n, lang)
	}
	title := localization.Text(faq.Title, faq.TitleI18n, lang)
	views := h.translate(lang, "faq.views", map[string]any{"count": faq.Views})
	respondEphemeralEmbed(s, i.Interaction, pkgdiscord.BuildFaqEmbed(title, body, views))
}

func (h *Handler) HandleLanguageSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	sess := h.session(ctx, interactionUser(i).ID)

	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}
	lang, ok := localization.Parse(data.Values[0])
	if !ok {
		return
	}
	sess.lang.SetLanguage(ctx, lang)

	respondEphemeral(s, i.Interaction,
		h.translate(lang, "language.updated", map[string]any{"language": lang.Native()}))
}

// HandleTicketCategorySelect shows the category's guide and checklist with a
// button that opens the compose modal. The template insert happens at button
// click, not here.
func (h *Handler) HandleTicketCategorySelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	lang := h.language(ctx, interactionUser(i).ID)

	categoryID, ok := selectedID(i, "ticketcat_")
	if !ok {
		return
	}
	category, err := h.ticketUseCase.Category(ctx, categoryID)
	if err != nil {
		h.fail(s, i.Interaction, lang, err)
		return
	}

	var b strings.Builder
	if guide := localization.Text(category.GuideDescription, category.GuideDescriptionI18n, lang); guide != "" {
		b.WriteString(guide)
	}
	checklist := localization.List(category.FormChecklist, category.FormChecklistI18n, lang)
	if len(checklist) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("**" + h.translate(lang, "ticket.checklist", nil) + "**")
		for _, item := range checklist {
			b.WriteString("\n- " + item)
		}
	}

	buttonLabel := localization.Text(category.FormButtonLabel, category.FormButtonLabelI18n, lang)
	if buttonLabel == "" {
		buttonLabel = h.translate(lang, "ticket.modal.new_title", nil)
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: b.String(),
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    buttonLabel,
						Style:    discordgo.PrimaryButton,
						CustomID: fmt.Sprintf("support_ticket_compose_%d", categoryID),
					},
				}},
			},
		},
	})
}

func (h *Handler) HandleReplySelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	sess := h.session(ctx, interactionUser(i).ID)
	lang := sess.lang.Language()

	ticketID, ok := selectedID(i, "ticket_")
	if !ok {
		return
	}
	sess.restoreFor(ctx, compose.ModeReply)
	sess.edit(func(f *compose.Form) {
		if f.Mode != compose.ModeReply {
			f.Reset(compose.ModeReply)
		}
		f.TargetTicketID = &ticketID
	})

	form := sess.view()
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: pkgdiscord.ReplyModalData(
			"support_reply_modal",
			h.translate(lang, "ticket.modal.reply_title", nil),
			h.translate(lang, "ticket.modal.body_label", nil),
			form.Body,
		),
	})
}
