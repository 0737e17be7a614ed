package ports

import (
	"context"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/shopspring/decimal"
)

type PaymentRepo interface {
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	FindForIntent(ctx context.Context, clubID, customerEmail, eventID string) (*domain.Payment, error)
	// ListByEmail returns payments ordered by paid_at descending. An empty
	// email lists all payments.
	ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error)
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
	// SaveReconciled persists every record of rec in one transaction and
	// returns domain.ErrPaymentExists if the transaction id is already taken.
	SaveReconciled(ctx context.Context, rec *domain.Reconciliation) error
}
