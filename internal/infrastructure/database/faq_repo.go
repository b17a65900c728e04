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

var _ output.FaqRepository = (*FaqRepository)(nil)

type FaqRepository struct {
	pool *pgxpool.Pool
}

func NewFaqRepository(pool *pgxpool.Pool) *FaqRepository {
	return &FaqRepository{pool: pool}
}

func (r *FaqRepository) ListCategories(ctx context.Context) ([]entities.FaqCategory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, name_i18n, "order", guide_url
		FROM faq_categories`)
	if err != nil {
		return nil, fmt.Errorf("list faq categories: %w", err)
	}
	defer rows.Close()

	var out []entities.FaqCategory
	for rows.Next() {
		var c entities.FaqCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.NameI18n, &c.Order, &c.GuideURL); err != nil {
			return nil, fmt.Errorf("scan faq category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const faqColumns = `id, category_id, title, title_i18n, body, body_i18n,
	blocks, blocks_i18n, is_popular, is_hidden, "order", views, created_at, updated_at`

func (r *FaqRepository) ListByCategory(ctx context.Context, categoryID int64) ([]entities.Faq, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+faqColumns+` FROM faqs WHERE category_id = $1`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	var out []entities.Faq
	for rows.Next() {
		f, err := scanFaq(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FaqRepository) FindByID(ctx context.Context, id int64) (*entities.Faq, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id)
	f, err := scanFaq(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFaqNotFound
		}
		return nil, fmt.Errorf("get faq by id: %w", err)
	}
	return &f, nil
}

func (r *FaqRepository) IncrementViews(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx,
		`UPDATE faqs SET views = views + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("increment faq views: %w", err)
	}
	return nil
}

func scanFaq(row pgx.Row) (entities.Faq, error) {
	var (
		f         entities.Faq
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&f.ID, &f.CategoryID, &f.Title, &f.TitleI18n, &f.Body, &f.BodyI18n,
		&f.Blocks, &f.BlocksI18n, &f.IsPopular, &f.IsHidden, &f.Order, &f.Views,
		&createdAt, &updatedAt)
	if err != nil {
		return entities.Faq{}, err
	}
	f.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	f.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return f, nil
}
