package service

import (
	"context"
	"errors"
	"testing"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOutboxService_RelayPending_AllSinksAccept(t *testing.T) {
	repo := mocks.NewMockOutboxRepo(t)
	mq := mocks.NewMockOutboxSink(t)
	tg := mocks.NewMockOutboxSink(t)
	svc := NewOutboxService(repo, []ports.OutboxSink{mq, tg}, 10, newTestLogger(t))

	msgs := []*domain.OutboxMessage{{ID: "m1"}, {ID: "m2"}}
	repo.EXPECT().ListUnpublished(mock.Anything, 10).Return(msgs, nil)
	mq.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(2)
	tg.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Times(2)
	repo.EXPECT().MarkPublished(mock.Anything, "m1").Return(nil)
	repo.EXPECT().MarkPublished(mock.Anything, "m2").Return(nil)

	n, err := svc.RelayPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestOutboxService_RelayPending_SinkFailureKeepsMessage(t *testing.T) {
	repo := mocks.NewMockOutboxRepo(t)
	sink := mocks.NewMockOutboxSink(t)
	svc := NewOutboxService(repo, []ports.OutboxSink{sink}, 0, newTestLogger(t))

	repo.EXPECT().ListUnpublished(mock.Anything, defaultOutboxBatch).Return([]*domain.OutboxMessage{{ID: "m1"}}, nil)
	sink.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	sink.EXPECT().Name().Return("rabbitmq")

	n, err := svc.RelayPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	repo.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything)
}

func TestOutboxService_RelayPending_ListError(t *testing.T) {
	repo := mocks.NewMockOutboxRepo(t)
	svc := NewOutboxService(repo, nil, 5, newTestLogger(t))

	repo.EXPECT().ListUnpublished(mock.Anything, 5).Return(nil, errors.New("db error"))

	_, err := svc.RelayPending(context.Background())

	assert.Error(t, err)
}
