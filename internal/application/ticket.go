package application

import (
	"context"
	"sort"
	"strings"

	"supportbot/internal/domain"
	"supportbot/internal/domain/entities"
	"supportbot/internal/ports/output"
)

type TicketService struct {
	ticketRepo output.TicketRepository
}

func NewTicketService(ticketRepo output.TicketRepository) *TicketService {
	return &TicketService{ticketRepo: ticketRepo}
}

// Categories returns the ticket categories in display order.
func (s *TicketService) Categories(ctx context.Context) ([]entities.TicketCategory, error) {
	cats, err := s.ticketRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Order != cats[j].Order {
			return cats[i].Order < cats[j].Order
		}
		return cats[i].ID < cats[j].ID
	})
	return cats, nil
}

func (s *TicketService) Category(ctx context.Context, id int64) (*entities.TicketCategory, error) {
	return s.ticketRepo.FindCategoryByID(ctx, id)
}

// Create validates and files a new ticket. The chosen category, when set,
// must exist.
func (s *TicketService) Create(ctx context.Context, ticket *entities.Ticket) error {
	if strings.TrimSpace(ticket.Title) == "" {
		return domain.ErrTitleRequired
	}
	if strings.TrimSpace(ticket.Body) == "" {
		return domain.ErrBodyRequired
	}
	if ticket.CategoryID != nil {
		if _, err := s.ticketRepo.FindCategoryByID(ctx, *ticket.CategoryID); err != nil {
			return domain.ErrCategoryNotFound
		}
	}
	ticket.Title = strings.TrimSpace(ticket.Title)
	ticket.Body = strings.TrimSpace(ticket.Body)
	ticket.Status = entities.StatusPending
	return s.ticketRepo.Create(ctx, ticket)
}

// Reply appends a follow-up to an existing ticket. Only the requester may
// add one.
func (s *TicketService) Reply(ctx context.Context, ticketID int64, authorID, authorName, body string) (*entities.Ticket, error) {
	if strings.TrimSpace(body) == "" {
		return nil, domain.ErrBodyRequired
	}
	ticket, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, domain.ErrTicketNotFound
	}
	if ticket.RequesterID != authorID {
		return nil, domain.ErrNotRequester
	}
	reply := &entities.TicketReply{
		TicketID:   ticket.ID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Body:       strings.TrimSpace(body),
	}
	if err := s.ticketRepo.AddReply(ctx, reply); err != nil {
		return nil, err
	}
	ticket.Replies = append(ticket.Replies, *reply)
	return ticket, nil
}

// TicketsByRequester lists a user's tickets, most recent first.
func (s *TicketService) TicketsByRequester(ctx context.Context, requesterID string) ([]entities.Ticket, error) {
	tickets, err := s.ticketRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
	return tickets, nil
}
