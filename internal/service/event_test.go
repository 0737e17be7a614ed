package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	date := time.Now().Add(24 * time.Hour)
	input := domain.CreateEventInput{
		ClubID:      "c1",
		Title:       "Blitz Night",
		Description: "Five minute games",
		Date:        date,
		Location:    "Hall B",
		Price:       decimal.RequireFromString("7.50"),
	}

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Blitz Night", event.Title)
	assert.Equal(t, "c1", event.ClubID)
	assert.Equal(t, date, event.Date)
	assert.True(t, decimal.RequireFromString("7.5").Equal(event.Price))
}

func TestEventService_CreateEvent_FreeEvent(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{ClubID: "c1", Title: "Open day"})

	require.NoError(t, err)
	assert.True(t, event.Price.IsZero())
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{name: "empty title", input: domain.CreateEventInput{ClubID: "c1"}},
		{name: "blank title", input: domain.CreateEventInput{ClubID: "c1", Title: "   "}},
		{name: "missing club", input: domain.CreateEventInput{Title: "Meetup"}},
		{name: "negative price", input: domain.CreateEventInput{ClubID: "c1", Title: "Meetup", Price: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(nil)

			_, err := svc.CreateEvent(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_CreateEvent_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{ClubID: "c1", Title: "Meetup"})

	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_List_ByClub(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	events := []*domain.Event{{ID: "e1"}, {ID: "e2"}}
	repo.EXPECT().List(mock.Anything, "c1").Return(events, nil)

	got, err := svc.List(context.Background(), "c1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
