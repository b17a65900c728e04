package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"supportbot/internal/application"
	"supportbot/internal/config"
	"supportbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	faqRepo output.FaqRepository,
	ticketRepo output.TicketRepository,
	userRepo output.UserRepository,
	translator output.T,
	kv output.KeyValue,
) *Bot {
	faqUC := application.NewFaqService(faqRepo)
	ticketUC := application.NewTicketService(ticketRepo)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Failed to create the Discord session:", err)
	}

	handler := NewHandler(faqUC, ticketUC, userRepo, translator, kv)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == "support" {
			b.handler.HandleCommand(s, i)
		}
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID

		if strings.HasPrefix(customID, "support_ticket_compose_") {
			b.handler.HandleComposeButton(s, i)
			return
		}
		switch customID {
		case "support_faq_category_select":
			b.handler.HandleFaqCategorySelect(s, i)
		case "support_faq_select":
			b.handler.HandleFaqSelect(s, i)
		case "support_ticket_category_select":
			b.handler.HandleTicketCategorySelect(s, i)
		case "support_reply_select":
			b.handler.HandleReplySelect(s, i)
		case "support_lang_select":
			b.handler.HandleLanguageSelect(s, i)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()
	defer b.handler.CloseSessions()

	command := &discordgo.ApplicationCommand{
		Name:        "support",
		Description: "고객센터",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "faq", Description: "자주 묻는 질문"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "ticket", Description: "새 문의 접수"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "reply", Description: "문의에 답변 추가"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "mytickets", Description: "내 문의 내역"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "language", Description: "언어 설정"},
		},
	}
	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, command); err != nil {
		log.Printf("⚠️ Failed to register command %s: %v", command.Name, err)
	}

	fmt.Println("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
