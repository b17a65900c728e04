package output

import (
	"context"

	"supportbot/internal/domain/entities"
)

type FaqRepository interface {
	ListCategories(ctx context.Context) ([]entities.FaqCategory, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]entities.Faq, error)
	FindByID(ctx context.Context, id int64) (*entities.Faq, error)
	IncrementViews(ctx context.Context, id int64) error
}
