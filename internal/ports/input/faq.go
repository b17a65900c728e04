package input

import (
	"context"

	"supportbot/internal/domain/entities"
)

type FaqUseCase interface {
	Categories(ctx context.Context) ([]entities.FaqCategory, error)
	FaqsByCategory(ctx context.Context, categoryID int64) ([]entities.Faq, error)
	Faq(ctx context.Context, id int64) (*entities.Faq, error)
}
