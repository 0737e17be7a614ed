package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// SessionIDPlaceholder is substituted by the gateway with the real session id.
const SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

const defaultCurrency = "usd"

var hundred = decimal.NewFromInt(100)

type CheckoutConfig struct {
	SiteDomain string
	Currency   string
	Timeout    time.Duration
}

func (c CheckoutConfig) successURL() string {
	return strings.TrimRight(c.SiteDomain, "/") + "/dashboard/payment-success?session_id=" + SessionIDPlaceholder
}

func (c CheckoutConfig) cancelURL() string {
	return strings.TrimRight(c.SiteDomain, "/") + "/dashboard/payment-cancelled"
}

type CheckoutService struct {
	paymentRepo ports.PaymentRepo
	gateway     ports.CheckoutGateway
	cfg         CheckoutConfig
	logger      logger.Logger
}

func NewCheckoutService(
	paymentRepo ports.PaymentRepo,
	gateway ports.CheckoutGateway,
	cfg CheckoutConfig,
	logger logger.Logger,
) *CheckoutService {
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}
	return &CheckoutService{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		cfg:         cfg,
		logger:      logger,
	}
}

// AmountCents converts a decimal cost into minor currency units, rounding
// half away from zero. Non-positive or unparsable costs are rejected.
func AmountCents(cost string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(cost))
	if err != nil {
		return 0, domain.Detailf(domain.ErrInvalidAmount, "cost %q is not a number", cost)
	}
	cents := d.Mul(hundred).Round(0)
	if !cents.IsPositive() || !cents.BigInt().IsInt64() {
		return 0, domain.Detailf(domain.ErrInvalidAmount, "cost must be positive")
	}
	return cents.IntPart(), nil
}

// InitiateCheckout creates a hosted checkout session and returns its URL.
// The already-paid check is best effort; reconciliation enforces uniqueness.
func (s *CheckoutService) InitiateCheckout(ctx context.Context, intent domain.CheckoutIntent) (string, error) {
	amount, err := AmountCents(intent.Cost)
	if err != nil {
		return "", err
	}
	if intent.SenderEmail == "" {
		return "", domain.Detailf(domain.ErrValidation, "sender email is required")
	}
	// название клуба уходит в Stripe как имя товара, пустое он отклоняет
	if strings.TrimSpace(intent.ClubName) == "" {
		return "", domain.Detailf(domain.ErrValidation, "club name is required")
	}

	ctx, cancel := withTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	_, err = s.paymentRepo.FindForIntent(ctx, intent.ClubID, intent.SenderEmail, intent.EventID)
	switch {
	case err == nil:
		return "", domain.ErrAlreadyPaid
	case !errors.Is(err, domain.ErrPaymentNotFound):
		return "", fmt.Errorf("check existing payment: %w", err)
	}

	session, err := s.gateway.CreateSession(ctx, domain.CheckoutSessionRequest{
		AmountCents:   amount,
		Currency:      s.cfg.Currency,
		ProductName:   intent.ClubName,
		CustomerEmail: intent.SenderEmail,
		Metadata: domain.SessionMetadata{
			EventID:  intent.EventID,
			ClubID:   intent.ClubID,
			ClubName: intent.ClubName,
		},
		SuccessURL: s.cfg.successURL(),
		CancelURL:  s.cfg.cancelURL(),
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	s.logger.Info("checkout session created",
		logger.String("session_id", session.ID),
		logger.String("club_id", intent.ClubID),
		logger.String("event_id", intent.EventID),
		logger.Int64("amount_cents", amount),
	)

	return session.URL, nil
}
