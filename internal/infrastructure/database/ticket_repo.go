package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"supportbot/internal/domain"
	"supportbot/internal/domain/entities"
	"supportbot/internal/ports/output"
)

var _ output.TicketRepository = (*TicketRepository)(nil)

type TicketRepository struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool}
}

const ticketCategoryColumns = `id, name, name_i18n, "order",
	guide_description, guide_description_i18n,
	form_enabled, form_button_label, form_button_label_i18n,
	form_template, form_template_i18n,
	form_title_template, form_title_template_i18n,
	form_checklist, form_checklist_i18n, form_checklist_required`

func (r *TicketRepository) ListCategories(ctx context.Context) ([]entities.TicketCategory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ticketCategoryColumns+` FROM ticket_categories`)
	if err != nil {
		return nil, fmt.Errorf("list ticket categories: %w", err)
	}
	defer rows.Close()

	var out []entities.TicketCategory
	for rows.Next() {
		c, err := scanTicketCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *TicketRepository) FindCategoryByID(ctx context.Context, id int64) (*entities.TicketCategory, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+ticketCategoryColumns+` FROM ticket_categories WHERE id = $1`, id)
	c, err := scanTicketCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get ticket category by id: %w", err)
	}
	return &c, nil
}

func (r *TicketRepository) Create(ctx context.Context, ticket *entities.Ticket) error {
	var createdAt, updatedAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tickets (requester_id, category_id, title, body, status, entry_source)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		ticket.RequesterID, ptrToInt8(ticket.CategoryID), ticket.Title, ticket.Body,
		string(ticket.Status), ticket.EntrySource,
	).Scan(&ticket.ID, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}
	ticket.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	ticket.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id int64) (*entities.Ticket, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, requester_id, category_id, title, body, status, entry_source, created_at, updated_at
		FROM tickets WHERE id = $1`, id)
	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("get ticket by id: %w", err)
	}
	if err := r.attachReplies(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) ListByRequester(ctx context.Context, requesterID string) ([]entities.Ticket, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, requester_id, category_id, title, body, status, entry_source, created_at, updated_at
		FROM tickets WHERE requester_id = $1`, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by requester: %w", err)
	}
	defer rows.Close()

	var out []entities.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TicketRepository) AddReply(ctx context.Context, reply *entities.TicketReply) error {
	var createdAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, `
		INSERT INTO ticket_replies (ticket_id, author_id, author_name, is_staff, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		reply.TicketID, reply.AuthorID, reply.AuthorName, reply.IsStaff, reply.Body,
	).Scan(&reply.ID, &createdAt)
	if err != nil {
		return fmt.Errorf("add ticket reply: %w", err)
	}
	reply.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

func (r *TicketRepository) attachReplies(ctx context.Context, t *entities.Ticket) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, ticket_id, author_id, author_name, is_staff, body, created_at
		FROM ticket_replies WHERE ticket_id = $1 ORDER BY created_at, id`, t.ID)
	if err != nil {
		return fmt.Errorf("get ticket replies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rep       entities.TicketReply
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&rep.ID, &rep.TicketID, &rep.AuthorID, &rep.AuthorName,
			&rep.IsStaff, &rep.Body, &createdAt); err != nil {
			return fmt.Errorf("scan ticket reply: %w", err)
		}
		rep.CreatedAt = pgtypeTimestamptzToTime(createdAt)
		t.Replies = append(t.Replies, rep)
	}
	return rows.Err()
}

func scanTicket(row pgx.Row) (entities.Ticket, error) {
	var (
		t          entities.Ticket
		categoryID pgtype.Int8
		status     string
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := row.Scan(&t.ID, &t.RequesterID, &categoryID, &t.Title, &t.Body, &status,
		&t.EntrySource, &createdAt, &updatedAt)
	if err != nil {
		return entities.Ticket{}, err
	}
	t.CategoryID = int8ToPtr(categoryID)
	t.Status = entities.TicketStatus(status)
	t.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	t.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return t, nil
}

func scanTicketCategory(row pgx.Row) (entities.TicketCategory, error) {
	var c entities.TicketCategory
	err := row.Scan(&c.ID, &c.Name, &c.NameI18n, &c.Order,
		&c.GuideDescription, &c.GuideDescriptionI18n,
		&c.FormEnabled, &c.FormButtonLabel, &c.FormButtonLabelI18n,
		&c.FormTemplate, &c.FormTemplateI18n,
		&c.FormTitleTemplate, &c.FormTitleTemplateI18n,
		&c.FormChecklist, &c.FormChecklistI18n, &c.FormChecklistRequired)
	if err != nil {
		return entities.TicketCategory{}, err
	}
	return c, nil
}
