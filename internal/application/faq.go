package application

import (
	"context"
	"log"
	"sort"

	"supportbot/internal/domain/entities"
	"supportbot/internal/ports/output"
)

type FaqService struct {
	faqRepo output.FaqRepository
}

func NewFaqService(faqRepo output.FaqRepository) *FaqService {
	return &FaqService{faqRepo: faqRepo}
}

// Categories returns all FAQ categories in display order.
func (s *FaqService) Categories(ctx context.Context) ([]entities.FaqCategory, error) {
	cats, err := s.faqRepo.ListCategories(ctx)
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

// FaqsByCategory returns the visible articles of a category in display
// order: ascending by order, ties broken by ascending id. Every list
// surface uses this one sort rule.
func (s *FaqService) FaqsByCategory(ctx context.Context, categoryID int64) ([]entities.Faq, error) {
	faqs, err := s.faqRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	visible := faqs[:0]
	for _, f := range faqs {
		if !f.IsHidden {
			visible = append(visible, f)
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		if visible[i].Order != visible[j].Order {
			return visible[i].Order < visible[j].Order
		}
		return visible[i].ID < visible[j].ID
	})
	return visible, nil
}

// Faq fetches one article and bumps its view counter best-effort.
func (s *FaqService) Faq(ctx context.Context, id int64) (*entities.Faq, error) {
	faq, err := s.faqRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.faqRepo.IncrementViews(ctx, id); err != nil {
		log.Printf("faq: increment views for %d: %v", id, err)
	}
	return faq, nil
}
