package discord

import "github.com/bwmarrin/discordgo"

// TicketModalData builds the new-ticket compose modal. titleValue and
// bodyValue carry restored draft or template content into the inputs.
func TicketModalData(customID, title, titleLabel, bodyLabel, titleValue, bodyValue string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: customID,
		Title:    title,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{CustomID: "title", Label: titleLabel, Style: discordgo.TextInputShort, Required: true, MaxLength: 100, Value: titleValue},
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{CustomID: "body", Label: bodyLabel, Style: discordgo.TextInputParagraph, Required: true, MaxLength: 4000, Value: bodyValue},
			}},
		},
	}
}

// ReplyModalData builds the follow-up reply modal (body only).
func ReplyModalData(customID, title, bodyLabel, bodyValue string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: customID,
		Title:    title,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{CustomID: "body", Label: bodyLabel, Style: discordgo.TextInputParagraph, Required: true, MaxLength: 4000, Value: bodyValue},
			}},
		},
	}
}

func textInputValue(data discordgo.ModalSubmitInteractionData, idx int) string {
	if idx >= len(data.Components) {
		return ""
	}
	row, ok := data.Components[idx].(*discordgo.ActionsRow)
	if !ok || len(row.Components) == 0 {
		return ""
	}
	input, ok := row.Components[0].(*discordgo.TextInput)
	if !ok {
		return ""
	}
	return input.Value
}

func ExtractTicketModalData(data discordgo.ModalSubmitInteractionData) (title, body string) {
	return textInputValue(data, 0), textInputValue(data, 1)
}

func ExtractReplyModalData(data discordgo.ModalSubmitInteractionData) (body string) {
	return textInputValue(data, 0)
}
