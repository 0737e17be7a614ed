package mq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChannel struct {
	exchange, key string
	msg           amqp.Publishing
	err           error
	closed        bool
}

func (c *recordingChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg
	return c.err
}

func (c *recordingChannel) Close() error {
	c.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &recordingChannel{}
	p := &Publisher{ch: ch, exchange: "clubsphere"}

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err := p.Publish(context.Background(), &domain.OutboxMessage{
		ID:        "m1",
		EventType: domain.EventTypePaymentReconciled,
		Payload:   []byte(`{"transaction_id":"pi_1"}`),
		CreatedAt: created,
	})

	require.NoError(t, err)
	assert.Equal(t, "clubsphere", ch.exchange)
	assert.Equal(t, "payment.reconciled", ch.key)
	assert.Equal(t, "m1", ch.msg.MessageId)
	assert.Equal(t, uint8(amqp.Persistent), ch.msg.DeliveryMode)
	assert.Equal(t, created, ch.msg.Timestamp)
	assert.JSONEq(t, `{"transaction_id":"pi_1"}`, string(ch.msg.Body))
}

func TestPublisher_PublishError(t *testing.T) {
	brokerErr := errors.New("channel closed")
	p := &Publisher{ch: &recordingChannel{err: brokerErr}, exchange: "clubsphere"}

	err := p.Publish(context.Background(), &domain.OutboxMessage{ID: "m1"})

	assert.ErrorIs(t, err, brokerErr)
}

func TestPublisher_Close(t *testing.T) {
	ch := &recordingChannel{}
	p := &Publisher{ch: ch}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
