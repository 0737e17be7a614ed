package notification

import (
	"context"
	"encoding/json"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts payment receipts to the ops chat. It is an outbox
// sink; without a token or chat id it accepts every message silently.
type TelegramNotifier struct {
	bot    sender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) Name() string { return "telegram" }

func (n *TelegramNotifier) Publish(ctx context.Context, msg *domain.OutboxMessage) error {
	if msg.EventType != domain.EventTypePaymentReconciled {
		return nil
	}

	var evt domain.PaymentReconciledEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		// битый payload не исправится повтором
		n.logger.Error("skip undecodable outbox message",
			logger.String("message_id", msg.ID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	return n.send(ctx, receiptText(&evt))
}

func receiptText(evt *domain.PaymentReconciledEvent) string {
	target := "membership"
	if evt.EventID != "" {
		target = "event " + evt.EventID
	}
	return fmt.Sprintf(
		"*Payment received*\n\n"+"Club: %s\n"+"For: %s\n"+"Amount: %s %s\n"+"Member: %s\n"+"Tracking: `%s`",
		evt.ClubName,
		target,
		decimal.New(evt.AmountCents, -2).StringFixed(2),
		evt.Currency,
		evt.CustomerEmail,
		evt.TrackingID,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return nil
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
