package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const paymentColumns = `id, transaction_id, amount_cents, currency, customer_email,
	club_id, club_name, event_id, status, paid_at, tracking_id`

func scanPayment(s scanner) (*domain.Payment, error) {
	var p domain.Payment
	if err := s.Scan(
		&p.ID, &p.TransactionID, &p.AmountCents, &p.Currency, &p.CustomerEmail,
		&p.ClubID, &p.ClubName, &p.EventID, &p.Status, &p.PaidAt, &p.TrackingID,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) getOne(ctx context.Context, op, query string, args ...any) (*domain.Payment, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, storeErr(op, err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, storeErr(op, err)
	}

	return p, nil
}

func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE transaction_id = $1`
	return r.getOne(ctx, "get payment", query, transactionID)
}

func (r *PaymentRepository) FindForIntent(ctx context.Context, clubID, customerEmail, eventID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE club_id = $1 AND customer_email = $2 AND event_id = $3
			  LIMIT 1`
	return r.getOne(ctx, "find payment", query, clubID, customerEmail, eventID)
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE $1 = '' OR customer_email = $1
			  ORDER BY paid_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, storeErr("list payments", err)
	}
	defer rows.Close()

	res := make([]*domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, storeErr("scan payment", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *PaymentRepository) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COALESCE(SUM(amount_cents), 0) FROM payments`)
	if err != nil {
		return decimal.Zero, storeErr("sum payments", err)
	}

	var cents int64
	if err = row.Scan(&cents); err != nil {
		return decimal.Zero, storeErr("scan payment sum", err)
	}

	return decimal.New(cents, -2), nil
}

// SaveReconciled writes the payment, its registration or membership and the
// outbox message in one transaction.
func (r *PaymentRepository) SaveReconciled(ctx context.Context, rec *domain.Reconciliation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer tx.Rollback()

	p := rec.Payment
	paymentQuery := `INSERT INTO payments (` + paymentColumns + `)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err = tx.ExecContext(
		ctx, paymentQuery,
		p.ID, p.TransactionID, p.AmountCents, p.Currency, p.CustomerEmail,
		p.ClubID, p.ClubName, p.EventID, p.Status, p.PaidAt, p.TrackingID,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPaymentExists
		}
		return storeErr("insert payment", err)
	}

	// Пользователь мог уже иметь бесплатную регистрацию: платёж всё равно сохраняем.
	if reg := rec.Registration; reg != nil {
		query := `INSERT INTO event_registrations (` + registrationColumns + `)
				  VALUES ($1, $2, $3, $4, $5, $6, $7)
				  ON CONFLICT (event_id, user_email) WHERE status = 'registered' DO NOTHING`
		if _, err = tx.ExecContext(
			ctx, query,
			reg.ID, reg.EventID, reg.ClubID, reg.UserEmail,
			reg.Status, reg.PaymentID, reg.RegisteredAt,
		); err != nil {
			return storeErr("insert paid registration", err)
		}
	}

	if m := rec.Membership; m != nil {
		query := `INSERT INTO memberships (id, club_id, user_email, status, payment_id, joined_at)
				  VALUES ($1, $2, $3, $4, $5, $6)
				  ON CONFLICT (club_id, user_email) WHERE status = 'active' DO NOTHING`
		if _, err = tx.ExecContext(
			ctx, query,
			m.ID, m.ClubID, m.UserEmail, m.Status, m.PaymentID, m.JoinedAt,
		); err != nil {
			return storeErr("insert membership", err)
		}
	}

	if o := rec.Outbox; o != nil {
		if err = insertOutbox(ctx, tx, o); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPaymentExists
		}
		return storeErr("commit reconciliation", err)
	}

	return nil
}

func insertOutbox(ctx context.Context, tx *sql.Tx, o *domain.OutboxMessage) error {
	query := `INSERT INTO payment_outbox (id, aggregate_id, event_type, payload, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.ExecContext(ctx, query, o.ID, o.AggregateID, o.EventType, string(o.Payload), o.CreatedAt); err != nil {
		return storeErr(fmt.Sprintf("insert outbox %s", o.EventType), err)
	}
	return nil
}
