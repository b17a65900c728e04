package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"supportbot/internal/domain/entities"
)

// mockFaqRepo is a test-local mock that implements output.FaqRepository.
type mockFaqRepo struct {
	mock.Mock
}

func (m *mockFaqRepo) ListCategories(ctx context.Context) ([]entities.FaqCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FaqCategory), args.Error(1)
}

func (m *mockFaqRepo) ListByCategory(ctx context.Context, categoryID int64) ([]entities.Faq, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Faq), args.Error(1)
}

func (m *mockFaqRepo) FindByID(ctx context.Context, id int64) (*entities.Faq, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Faq), args.Error(1)
}

func (m *mockFaqRepo) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestFaqCategoriesSorted(t *testing.T) {
	repo := new(mockFaqRepo)
	svc := NewFaqService(repo)

	repo.On("ListCategories", mock.Anything).Return([]entities.FaqCategory{
		{ID: 3, Order: 2},
		{ID: 2, Order: 1},
		{ID: 1, Order: 1},
	}, nil)

	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)

	// Ascending by order, ties broken by ascending id.
	ids := []int64{cats[0].ID, cats[1].ID, cats[2].ID}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestFaqsByCategorySortedAndVisible(t *testing.T) {
	repo := new(mockFaqRepo)
	svc := NewFaqService(repo)

	repo.On("ListByCategory", mock.Anything, int64(1)).Return([]entities.Faq{
		{ID: 5, Order: 0},
		{ID: 4, Order: 0},
		{ID: 9, Order: 1, IsHidden: true},
		{ID: 1, Order: 2},
	}, nil)

	faqs, err := svc.FaqsByCategory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, faqs, 3)
	assert.EqualValues(t, 4, faqs[0].ID)
	assert.EqualValues(t, 5, faqs[1].ID)
	assert.EqualValues(t, 1, faqs[2].ID)
}

func TestFaqViewCountBestEffort(t *testing.T) {
	repo := new(mockFaqRepo)
	svc := NewFaqService(repo)

	repo.On("FindByID", mock.Anything, int64(7)).Return(&entities.Faq{ID: 7, Title: "제목"}, nil)
	repo.On("IncrementViews", mock.Anything, int64(7)).Return(errors.New("db down"))

	faq, err := svc.Faq(context.Background(), 7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, faq.ID)
}
