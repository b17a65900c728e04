package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"supportbot/internal/domain/entities"
)

const embedColor = 0x5865F2

// RenderBlocks flattens structured article blocks into Discord markdown.
// Unknown block types are skipped rather than rendered raw.
func RenderBlocks(blocks []entities.FaqBlock) string {
	var b strings.Builder
	for _, block := range blocks {
		part := renderBlock(block)
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(part)
	}
	return b.String()
}

func renderBlock(block entities.FaqBlock) string {
	switch block.Type {
	case "paragraph":
		return block.Text
	case "heading":
		return "**" + block.Text + "**"
	case "callout":
		return "> " + strings.ReplaceAll(block.Text, "\n", "\n> ")
	case "bullets":
		lines := make([]string, 0, len(block.Items))
		for _, item := range block.Items {
			lines = append(lines, "- "+item)
		}
		return strings.Join(lines, "\n")
	case "numbered":
		lines := make([]string, 0, len(block.Items))
		for n, item := range block.Items {
			lines = append(lines, fmt.Sprintf("%d. %s", n+1, item))
		}
		return strings.Join(lines, "\n")
	case "divider":
		return "───"
	case "image", "video", "file":
		name := block.Name
		if name == "" {
			name = block.URL
		}
		if block.URL == "" {
			return ""
		}
		return fmt.Sprintf("[%s](%s)", name, block.URL)
	default:
		return ""
	}
}

// BuildFaqEmbed renders one article. footer typically carries the view count.
func BuildFaqEmbed(title, body, footer string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: body,
		Color:       embedColor,
	}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	}
	return embed
}

// BuildTicketListEmbed renders the requester's ticket history, one line per
// ticket.
func BuildTicketListEmbed(header string, lines []string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       header,
		Description: strings.Join(lines, "\n"),
		Color:       embedColor,
	}
}
