package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const messageAlreadyExists = "already exists"

// ReconciliationService turns a completed checkout session into a Payment
// and its paired registration, exactly once per transaction id.
type ReconciliationService struct {
	gateway     ports.CheckoutGateway
	paymentRepo ports.PaymentRepo
	trackingIDs ports.TrackingIDGenerator
	logger      logger.Logger
	timeout     time.Duration
	now         func() time.Time
}

func NewReconciliationService(
	gateway ports.CheckoutGateway,
	paymentRepo ports.PaymentRepo,
	trackingIDs ports.TrackingIDGenerator,
	logger logger.Logger,
	timeout time.Duration,
) *ReconciliationService {
	return &ReconciliationService{
		gateway:     gateway,
		paymentRepo: paymentRepo,
		trackingIDs: trackingIDs,
		logger:      logger,
		timeout:     timeout,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Reconcile is safe to call any number of times for the same session. Only
// gateway-reported data is written. The caller's cancellation is ignored so
// that an in-flight write finishes and a retry hits the idempotency check.
func (s *ReconciliationService) Reconcile(ctx context.Context, sessionID string) (*domain.ReconcileResult, error) {
	if sessionID == "" {
		return nil, domain.Detailf(domain.ErrValidation, "session id is required")
	}

	ctx, cancel := withTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	session, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve session: %w", err)
	}

	transactionID := session.PaymentIntentID

	if transactionID != "" {
		existing, err := s.paymentRepo.GetByTransactionID(ctx, transactionID)
		switch {
		case err == nil:
			return alreadyExists(existing), nil
		case !errors.Is(err, domain.ErrPaymentNotFound):
			return nil, fmt.Errorf("check existing payment: %w", err)
		}
	}

	if !session.Paid() {
		s.logger.Debug("checkout session not paid",
			logger.String("session_id", sessionID),
			logger.String("payment_status", session.PaymentStatus),
		)
		return &domain.ReconcileResult{Success: false}, nil
	}

	if transactionID == "" {
		return nil, fmt.Errorf("%w: paid session %s has no payment intent", domain.ErrUpstream, sessionID)
	}

	trackingID, err := s.trackingIDs.NewTrackingID()
	if err != nil {
		return nil, fmt.Errorf("generate tracking id: %w", err)
	}

	rec, err := s.buildReconciliation(session, trackingID)
	if err != nil {
		return nil, err
	}

	if err = s.paymentRepo.SaveReconciled(ctx, rec); err != nil {
		if !errors.Is(err, domain.ErrPaymentExists) {
			return nil, fmt.Errorf("save reconciliation: %w", err)
		}
		// lost the race to a concurrent call for the same transaction
		existing, getErr := s.paymentRepo.GetByTransactionID(ctx, transactionID)
		if getErr != nil {
			return nil, fmt.Errorf("load concurrent payment: %w", getErr)
		}
		return alreadyExists(existing), nil
	}

	s.logger.Info("payment reconciled",
		logger.String("transaction_id", transactionID),
		logger.String("tracking_id", trackingID),
		logger.String("club_id", session.Metadata.ClubID),
		logger.String("event_id", session.Metadata.EventID),
		logger.Int64("amount_cents", session.AmountTotal),
	)

	return &domain.ReconcileResult{
		Success:       true,
		TrackingID:    trackingID,
		TransactionID: transactionID,
	}, nil
}

func (s *ReconciliationService) buildReconciliation(session *domain.CheckoutSession, trackingID string) (*domain.Reconciliation, error) {
	now := s.now()
	transactionID := session.PaymentIntentID

	payment := &domain.Payment{
		ID:            uuid.New().String(),
		TransactionID: transactionID,
		AmountCents:   session.AmountTotal,
		Currency:      session.Currency,
		CustomerEmail: session.CustomerEmail,
		ClubID:        session.Metadata.ClubID,
		ClubName:      session.Metadata.ClubName,
		EventID:       session.Metadata.EventID,
		Status:        domain.PaymentStatusPaid,
		PaidAt:        now,
		TrackingID:    trackingID,
	}

	rec := &domain.Reconciliation{Payment: payment}

	if session.Metadata.EventID != "" {
		rec.Registration = &domain.EventRegistration{
			ID:           uuid.New().String(),
			EventID:      session.Metadata.EventID,
			ClubID:       session.Metadata.ClubID,
			UserEmail:    session.CustomerEmail,
			Status:       domain.RegistrationStatusRegistered,
			PaymentID:    &transactionID,
			RegisteredAt: now,
		}
	} else {
		rec.Membership = &domain.Membership{
			ID:        uuid.New().String(),
			ClubID:    session.Metadata.ClubID,
			UserEmail: session.CustomerEmail,
			Status:    domain.MembershipStatusActive,
			PaymentID: transactionID,
			JoinedAt:  now,
		}
	}

	payload, err := json.Marshal(domain.PaymentReconciledEvent{
		TransactionID: transactionID,
		TrackingID:    trackingID,
		AmountCents:   payment.AmountCents,
		Currency:      payment.Currency,
		CustomerEmail: payment.CustomerEmail,
		ClubID:        payment.ClubID,
		ClubName:      payment.ClubName,
		EventID:       payment.EventID,
		PaidAt:        now,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal outbox payload: %w", err)
	}

	rec.Outbox = &domain.OutboxMessage{
		ID:          uuid.New().String(),
		AggregateID: transactionID,
		EventType:   domain.EventTypePaymentReconciled,
		Payload:     payload,
		CreatedAt:   now,
	}

	return rec, nil
}

func alreadyExists(p *domain.Payment) *domain.ReconcileResult {
	return &domain.ReconcileResult{
		Success:       true,
		Message:       messageAlreadyExists,
		TrackingID:    p.TrackingID,
		TransactionID: p.TransactionID,
	}
}
