package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"supportbot/internal/domain"
	"supportbot/internal/domain/entities"
)

// mockTicketRepo is a test-local mock that implements output.TicketRepository.
type mockTicketRepo struct {
	mock.Mock
}

func (m *mockTicketRepo) ListCategories(ctx context.Context) ([]entities.TicketCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TicketCategory), args.Error(1)
}

func (m *mockTicketRepo) FindCategoryByID(ctx context.Context, id int64) (*entities.TicketCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TicketCategory), args.Error(1)
}

func (m *mockTicketRepo) Create(ctx context.Context, ticket *entities.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *mockTicketRepo) FindByID(ctx context.Context, id int64) (*entities.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Ticket), args.Error(1)
}

func (m *mockTicketRepo) ListByRequester(ctx context.Context, requesterID string) ([]entities.Ticket, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Ticket), args.Error(1)
}

func (m *mockTicketRepo) AddReply(ctx context.Context, reply *entities.TicketReply) error {
	args := m.Called(ctx, reply)
	return args.Error(0)
}

func TestCreateValidates(t *testing.T) {
	repo := new(mockTicketRepo)
	svc := NewTicketService(repo)
	ctx := context.Background()

	err := svc.Create(ctx, &entities.Ticket{Title: "  ", Body: "body"})
	assert.ErrorIs(t, err, domain.ErrTitleRequired)

	err = svc.Create(ctx, &entities.Ticket{Title: "title", Body: " \n"})
	assert.ErrorIs(t, err, domain.ErrBodyRequired)

	catID := int64(99)
	repo.On("FindCategoryByID", mock.Anything, int64(99)).Return(nil, domain.ErrCategoryNotFound)
	err = svc.Create(ctx, &entities.Ticket{Title: "title", Body: "body", CategoryID: &catID})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateFilesTicket(t *testing.T) {
	repo := new(mockTicketRepo)
	svc := NewTicketService(repo)

	catID := int64(2)
	repo.On("FindCategoryByID", mock.Anything, int64(2)).Return(&entities.TicketCategory{ID: 2}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	ticket := &entities.Ticket{RequesterID: "u1", CategoryID: &catID, Title: " 환불 문의 ", Body: " 내용 "}
	require.NoError(t, svc.Create(context.Background(), ticket))
	assert.Equal(t, "환불 문의", ticket.Title)
	assert.Equal(t, "내용", ticket.Body)
	assert.Equal(t, entities.StatusPending, ticket.Status)
}

func TestReplyGuards(t *testing.T) {
	repo := new(mockTicketRepo)
	svc := NewTicketService(repo)
	ctx := context.Background()

	_, err := svc.Reply(ctx, 1, "u1", "User", "  ")
	assert.ErrorIs(t, err, domain.ErrBodyRequired)

	repo.On("FindByID", mock.Anything, int64(1)).Return(nil, domain.ErrTicketNotFound).Once()
	_, err = svc.Reply(ctx, 1, "u1", "User", "body")
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)

	repo.On("FindByID", mock.Anything, int64(1)).Return(&entities.Ticket{ID: 1, RequesterID: "someone-else"}, nil)
	_, err = svc.Reply(ctx, 1, "u1", "User", "body")
	assert.ErrorIs(t, err, domain.ErrNotRequester)
}

func TestReplyAppends(t *testing.T) {
	repo := new(mockTicketRepo)
	svc := NewTicketService(repo)

	repo.On("FindByID", mock.Anything, int64(5)).Return(&entities.Ticket{ID: 5, RequesterID: "u1"}, nil)
	repo.On("AddReply", mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.Reply(context.Background(), 5, "u1", "User", " 추가 내용 ")
	require.NoError(t, err)
	require.Len(t, ticket.Replies, 1)
	assert.Equal(t, "추가 내용", ticket.Replies[0].Body)
	assert.EqualValues(t, 5, ticket.Replies[0].TicketID)
}

func TestTicketsByRequesterMostRecentFirst(t *testing.T) {
	repo := new(mockTicketRepo)
	svc := NewTicketService(repo)

	now := time.Now()
	repo.On("ListByRequester", mock.Anything, "u1").Return([]entities.Ticket{
		{ID: 1, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, CreatedAt: now},
		{ID: 3, CreatedAt: now.Add(-time.Hour)},
	}, nil)

	tickets, err := svc.TicketsByRequester(context.Background(), "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, tickets[0].ID)
	assert.EqualValues(t, 3, tickets[1].ID)
	assert.EqualValues(t, 1, tickets[2].ID)
}
