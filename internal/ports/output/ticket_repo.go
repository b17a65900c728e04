package output

import (
	"context"

	"supportbot/internal/domain/entities"
)

type TicketRepository interface {
	ListCategories(ctx context.Context) ([]entities.TicketCategory, error)
	FindCategoryByID(ctx context.Context, id int64) (*entities.TicketCategory, error)
	Create(ctx context.Context, ticket *entities.Ticket) error
	FindByID(ctx context.Context, id int64) (*entities.Ticket, error)
	ListByRequester(ctx context.Context, requesterID string) ([]entities.Ticket, error)
	AddReply(ctx context.Context, reply *entities.TicketReply) error
}
