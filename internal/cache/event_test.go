package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:        "e1",
		ClubID:    "c1",
		Title:     "Blitz Night",
		Date:      time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC),
		Price:     decimal.RequireFromString("7.50"),
		CreatedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestEventCache_GetByID_Miss(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	db, rmock := redismock.NewClientMock()
	c := NewEventCache(repo, db, time.Minute, newTestLogger(t))

	event := sampleEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	rmock.ExpectGet("event:e1").RedisNil()
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	rmock.ExpectSet("event:e1", payload, time.Minute).SetVal("OK")

	got, err := c.GetByID(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, event, got)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestEventCache_GetByID_Hit(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	db, rmock := redismock.NewClientMock()
	c := NewEventCache(repo, db, time.Minute, newTestLogger(t))

	payload, err := json.Marshal(sampleEvent())
	require.NoError(t, err)
	rmock.ExpectGet("event:e1").SetVal(string(payload))

	got, err := c.GetByID(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "Blitz Night", got.Title)
	assert.Equal(t, "c1", got.ClubID)
	assert.True(t, decimal.RequireFromString("7.5").Equal(got.Price))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestEventCache_GetByID_RedisDown(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	db, rmock := redismock.NewClientMock()
	c := NewEventCache(repo, db, time.Minute, newTestLogger(t))

	event := sampleEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	rmock.ExpectGet("event:e1").SetErr(errors.New("connection refused"))
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	rmock.ExpectSet("event:e1", payload, time.Minute).SetErr(errors.New("connection refused"))

	got, err := c.GetByID(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID)
}

func TestEventCache_GetByID_NotFoundIsNotCached(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	db, rmock := redismock.NewClientMock()
	c := NewEventCache(repo, db, time.Minute, newTestLogger(t))

	rmock.ExpectGet("event:missing").RedisNil()
	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := c.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestEventCache_Invalidate(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	c := NewEventCache(nil, db, 0, newTestLogger(t))

	rmock.ExpectDel("event:e1", "event:e2").SetVal(2)

	require.NoError(t, c.Invalidate(context.Background(), "e1", "e2"))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestEventCache_NilClientPassesThrough(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	c := NewEventCache(repo, nil, 0, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(sampleEvent(), nil)
	repo.EXPECT().List(mock.Anything, "c1").Return([]*domain.Event{sampleEvent()}, nil)

	_, err := c.GetByID(context.Background(), "e1")
	require.NoError(t, err)

	events, err := c.List(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, events, 1)

	assert.NoError(t, c.Invalidate(context.Background(), "e1"))
}
