package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/stretchr/testify/assert"
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

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		b.sent = append(b.sent, m)
	}
	return tgbotapi.Message{}, b.err
}

func reconciledMessage(t *testing.T) *domain.OutboxMessage {
	t.Helper()
	payload, err := json.Marshal(domain.PaymentReconciledEvent{
		TransactionID: "pi_1",
		TrackingID:    "lx1-0011223344556677",
		AmountCents:   1250,
		Currency:      "usd",
		CustomerEmail: "a@x.io",
		ClubName:      "Chess Club",
		EventID:       "e1",
	})
	require.NoError(t, err)
	return &domain.OutboxMessage{ID: "m1", EventType: domain.EventTypePaymentReconciled, Payload: payload}
}

func TestTelegramNotifier_Publish(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, chatID: 42, logger: newTestLogger(t)}

	require.NoError(t, n.Publish(context.Background(), reconciledMessage(t)))

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "Chess Club")
	assert.Contains(t, bot.sent[0].Text, "12.50 usd")
	assert.Contains(t, bot.sent[0].Text, "lx1-0011223344556677")
}

func TestTelegramNotifier_SendFailureIsReturned(t *testing.T) {
	n := &TelegramNotifier{bot: &fakeBot{err: errors.New("429")}, chatID: 42, logger: newTestLogger(t)}

	err := n.Publish(context.Background(), reconciledMessage(t))

	assert.Error(t, err)
}

func TestTelegramNotifier_DisabledAcceptsEverything(t *testing.T) {
	n, err := NewTelegramNotifier("", 0, newTestLogger(t))
	require.NoError(t, err)

	assert.NoError(t, n.Publish(context.Background(), reconciledMessage(t)))
}

func TestTelegramNotifier_SkipsBadPayload(t *testing.T) {
	bot := &fakeBot{}
	n := &TelegramNotifier{bot: bot, chatID: 42, logger: newTestLogger(t)}

	err := n.Publish(context.Background(), &domain.OutboxMessage{
		ID: "m1", EventType: domain.EventTypePaymentReconciled, Payload: []byte("{"),
	})

	assert.NoError(t, err)
	assert.Empty(t, bot.sent)
}

func TestReceiptText_Membership(t *testing.T) {
	text := receiptText(&domain.PaymentReconciledEvent{ClubName: "Chess Club", AmountCents: 2000, Currency: "usd"})

	assert.Contains(t, text, "For: membership")
	assert.Contains(t, text, "20.00 usd")
}
