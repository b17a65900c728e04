package input

import (
	"context"

	"supportbot/internal/domain/entities"
)

type TicketUseCase interface {
	Categories(ctx context.Context) ([]entities.TicketCategory, error)
	Category(ctx context.Context, id int64) (*entities.TicketCategory, error)
	Create(ctx context.Context, ticket *entities.Ticket) error
	Reply(ctx context.Context, ticketID int64, authorID, authorName, body string) (*entities.Ticket, error)
	TicketsByRequester(ctx context.Context, requesterID string) ([]entities.Ticket, error)
}
