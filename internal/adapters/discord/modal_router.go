package discord

import "github.com/bwmarrin/discordgo"

// HandleModalSubmit routes modal submissions by CustomID.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	switch data.CustomID {
	case "support_ticket_modal":
		h.handleTicketModalSubmit(s, i, data)
	case "support_reply_modal":
		h.handleReplyModalSubmit(s, i, data)
	default:
		// Unknown modal: ignore silently to stay robust.
	}
}
