package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func paidSession() *domain.CheckoutSession {
	return &domain.CheckoutSession{
		ID:              "cs_1",
		PaymentIntentID: "pi_1",
		PaymentStatus:   domain.SessionPaymentStatusPaid,
		AmountTotal:     1250,
		Currency:        "usd",
		CustomerEmail:   "a@x.io",
		Metadata:        domain.SessionMetadata{EventID: "e1", ClubID: "c1", ClubName: "Chess Club"},
	}
}

type reconcileMocks struct {
	gateway  *mocks.MockCheckoutGateway
	payments *mocks.MockPaymentRepo
	tracking *mocks.MockTrackingIDGenerator
}

func newReconciliationService(t *testing.T) (*ReconciliationService, reconcileMocks) {
	t.Helper()
	m := reconcileMocks{
		gateway:  mocks.NewMockCheckoutGateway(t),
		payments: mocks.NewMockPaymentRepo(t),
		tracking: mocks.NewMockTrackingIDGenerator(t),
	}
	svc := NewReconciliationService(m.gateway, m.payments, m.tracking, newTestLogger(t), 0)
	return svc, m
}

func TestReconciliationService_Reconcile_FirstCall(t *testing.T) {
	svc, m := newReconciliationService(t)
	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return paidAt }

	var saved *domain.Reconciliation
	m.gateway.EXPECT().RetrieveSession(mock.Anything, "cs_1").Return(paidSession(), nil)
	m.payments.EXPECT().GetByTransactionID(mock.Anything, "pi_1").Return(nil, domain.ErrPaymentNotFound)
	m.tracking.EXPECT().NewTrackingID().Return("lx1-0011223344556677", nil)
	m.payments.EXPECT().SaveReconciled(mock.Anything, mock.Anything).
		Run(func(_ context.Context, rec *domain.Reconciliation) { saved = rec }).
		Return(nil)

	res, err := svc.Reconcile(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.Equal(t, &domain.ReconcileResult{
		Success:       true,
		TrackingID:    "lx1-0011223344556677",
		TransactionID: "pi_1",
	}, res)

	require.NotNil(t, saved)
	p := saved.Payment
	assert.Equal(t, "pi_1", p.TransactionID)
	assert.True(t, decimal.RequireFromString("12.5").Equal(p.Amount()))
	assert.Equal(t, "usd", p.Currency)
	assert.Equal(t, "a@x.io", p.CustomerEmail)
	assert.Equal(t, "c1", p.ClubID)
	assert.Equal(t, "Chess Club", p.ClubName)
	assert.Equal(t, "e1", p.EventID)
	assert.Equal(t, domain.PaymentStatusPaid, p.Status)
	assert.Equal(t, paidAt, p.PaidAt)

	reg := saved.Registration
	require.NotNil(t, reg)
	assert.Nil(t, saved.Membership)
	assert.Equal(t, "e1", reg.EventID)
	assert.Equal(t, "c1", reg.ClubID)
	assert.Equal(t, "a@x.io", reg.UserEmail)
	assert.Equal(t, domain.RegistrationStatusRegistered, reg.Status)
	require.NotNil(t, reg.PaymentID)
	assert.Equal(t, "pi_1", *reg.PaymentID)
	assert.Equal(t, paidAt, reg.RegisteredAt)

	require.NotNil(t, saved.Outbox)
	assert.Equal(t, domain.EventTypePaymentReconciled, saved.Outbox.EventType)
	assert.Equal(t, "pi_1", saved.Outbox.AggregateID)
	var evt domain.PaymentReconciledEvent
	require.NoError(t, json.Unmarshal(saved.Outbox.Payload, &evt))
	assert.Equal(t, "lx1-0011223344556677", evt.TrackingID)
	assert.Equal(t, int64(1250), evt.AmountCents)
}

func TestReconciliationService_Reconcile_MembershipWithoutEvent(t *testing.T) {
	svc, m := newReconciliationService(t)

	session := paidSession()
	session.Metadata.EventID = ""

	var saved *domain.Reconciliation
	m.gateway.EXPECT().RetrieveSession(mock.Anything, "cs_1").Return(session, nil)
	m.payments.EXPECT().GetByTransactionID(mock.Anything, "pi_1").Return(nil, domain.ErrPaymentNotFound)
	m.tracking.EXPECT().NewTrackingID().Return("lx1-0011223344556677", nil)
	m.payments.EXPECT().SaveReconciled(mock.Anything, mock.Anything).
		Run(func(_ context.Context, rec *domain.Reconciliation) { saved = rec }).
		Return(nil)

	_, err := svc.Reconcile(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.Nil(t, saved.Registration)
	require.NotNil(t, saved.Membership)
	assert.Equal(t, "c1", saved.Membership.ClubID)
	assert.Equal(t, "pi_1", saved.Membership.PaymentID)
	assert.Equal(t, domain.MembershipStatusActive, saved.Membership.Status)
}

func TestReconciliationService_Reconcile_AlreadyExists(t *testing.T) {
	svc, m := newReconciliationService(t)

	m.gateway.EXPECT().RetrieveSession(mock.Anything, "cs_1").Return(paidSession(), nil)
	m.payments.EXPECT().GetByTransactionID(mock.Anything, "pi_1").
		Return(&domain.Payment{TransactionID: "pi_1", TrackingID: "stored-0000000000000000"}, nil)

	res, err := svc.Reconcile(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "already exists", res.Message)
	assert.Equal(t, "pi_1", res.TransactionID)
	assert.Equal(t, "stored-0000000000000000", res.TrackingID)
}

func TestReconciliationService_Reconcile_NotPaid(t *testing.T) {
	svc, m := newReconciliationService(t)

	session := paidSession()
	session.PaymentStatus = "unpaid"
	session.PaymentIntentID = ""
	m.gateway.EXPECT().RetrieveSession(mock.Anything, "cs_1").Return(session, nil)

	res, err := svc.Reconcile(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Empty(t, res.TrackingID)
}

func TestReconciliationService_Reconcile_EmptySessionID(t *testing.T) {
	svc, _ := newReconciliationService(t)

	_, err := svc.Reconcile(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestReconciliationService_Reconcile_GatewayError(t *testing.T) {
	svc, m := newReconciliationService(t)

	m.gateway.EXPECT().RetrieveSession(mock.Anything, "cs_x").Return(nil, domain.ErrSessionNotFound)

	_, err := svc.Reconcile(context.Background(), "cs_x")

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestReconciliationService_Reconcile_PaidWithoutIntent(t *testing.T) {
	svc, m := newReconciliationService(t)

	session := paidSession()
	session.PaymentIntentID = ""
	m.gateway.EXPECT().RetrieveSession(mock.Anything, "cs_1").Return(session, nil)

	_, err := svc.Reconcile(context.Background(), "cs_1")

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestReconciliationService_Reconcile_LostInsertRace(t *testing.T) {
	svc, m := newReconciliationService(t)

	m.gateway.EXPECT().RetrieveSession(mock.Anything, "cs_1").Return(paidSession(), nil)
	m.payments.EXPECT().GetByTransactionID(mock.Anything, "pi_1").Return(nil, domain.ErrPaymentNotFound).Once()
	m.tracking.EXPECT().NewTrackingID().Return("mine-0000000000000001", nil)
	m.payments.EXPECT().SaveReconciled(mock.Anything, mock.Anything).Return(domain.ErrPaymentExists)
	m.payments.EXPECT().GetByTransactionID(mock.Anything, "pi_1").
		Return(&domain.Payment{TransactionID: "pi_1", TrackingID: "winner-0000000000000002"}, nil).Once()

	res, err := svc.Reconcile(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.Equal(t, "already exists", res.Message)
	assert.Equal(t, "winner-0000000000000002", res.TrackingID)
}

func TestReconciliationService_Reconcile_IgnoresCallerCancel(t *testing.T) {
	svc, m := newReconciliationService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.gateway.EXPECT().RetrieveSession(mock.Anything, "cs_1").
		RunAndReturn(func(ctx context.Context, _ string) (*domain.CheckoutSession, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return paidSession(), nil
		})
	m.payments.EXPECT().GetByTransactionID(mock.Anything, "pi_1").
		Return(&domain.Payment{TransactionID: "pi_1", TrackingID: "t-0000000000000000"}, nil)

	res, err := svc.Reconcile(ctx, "cs_1")

	require.NoError(t, err)
	assert.True(t, res.Success)
}

// memoryPayments is a PaymentRepo whose SaveReconciled enforces the
// transaction id uniqueness the database provides.
type memoryPayments struct {
	mu       sync.Mutex
	payments map[string]*domain.Payment
	regs     []*domain.EventRegistration
}

func newMemoryPayments() *memoryPayments {
	return &memoryPayments{payments: make(map[string]*domain.Payment)}
}

func (r *memoryPayments) GetByTransactionID(_ context.Context, id string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memoryPayments) FindForIntent(context.Context, string, string, string) (*domain.Payment, error) {
	return nil, domain.ErrPaymentNotFound
}

func (r *memoryPayments) ListByEmail(context.Context, string) ([]*domain.Payment, error) {
	return nil, nil
}

func (r *memoryPayments) TotalAmount(context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *memoryPayments) SaveReconciled(_ context.Context, rec *domain.Reconciliation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[rec.Payment.TransactionID]; ok {
		return domain.ErrPaymentExists
	}
	r.payments[rec.Payment.TransactionID] = rec.Payment
	if rec.Registration != nil {
		r.regs = append(r.regs, rec.Registration)
	}
	return nil
}

type staticGateway struct {
	session *domain.CheckoutSession
}

func (g staticGateway) CreateSession(context.Context, domain.CheckoutSessionRequest) (*domain.CheckoutSession, error) {
	return nil, errors.New("not supported")
}

func (g staticGateway) RetrieveSession(context.Context, string) (*domain.CheckoutSession, error) {
	s := *g.session
	return &s, nil
}

func TestReconciliationService_Reconcile_ConcurrentCallsWriteOnce(t *testing.T) {
	const calls = 32

	repo := newMemoryPayments()
	svc := NewReconciliationService(staticGateway{session: paidSession()}, repo, NewTrackingIDGenerator(), newTestLogger(t), time.Second)

	results := make([]*domain.ReconcileResult, calls)
	errs := make([]error, calls)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = svc.Reconcile(context.Background(), "cs_1")
		}(i)
	}
	close(start)
	wg.Wait()

	require.Len(t, repo.payments, 1)
	require.Len(t, repo.regs, 1)
	stored := repo.payments["pi_1"]

	fresh := 0
	for i := 0; i < calls; i++ {
		require.NoError(t, errs[i])
		assert.True(t, results[i].Success)
		assert.Equal(t, "pi_1", results[i].TransactionID)
		assert.Equal(t, stored.TrackingID, results[i].TrackingID)
		if results[i].Message == "" {
			fresh++
		}
	}
	assert.Equal(t, 1, fresh)
}

func TestReconciliationService_Reconcile_ReplayKeepsTrackingID(t *testing.T) {
	repo := newMemoryPayments()
	svc := NewReconciliationService(staticGateway{session: paidSession()}, repo, NewTrackingIDGenerator(), newTestLogger(t), time.Second)

	first, err := svc.Reconcile(context.Background(), "cs_1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := svc.Reconcile(context.Background(), "cs_1")
		require.NoError(t, err)
		assert.Equal(t, first.TrackingID, again.TrackingID)
		assert.Equal(t, "already exists", again.Message)
	}
	assert.Len(t, repo.payments, 1)
}
