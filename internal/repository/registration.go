package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const registrationColumns = `id, event_id, club_id, user_email, status, payment_id, registered_at`

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.EventRegistration) error {
	query := `INSERT INTO event_registrations (` + registrationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	// без ретраев: повтор после таймаута может упереться в собственную вставку
	_, err := r.db.Master.ExecContext(
		ctx, query,
		reg.ID, reg.EventID, reg.ClubID, reg.UserEmail,
		reg.Status, reg.PaymentID, reg.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		return storeErr("insert registration", err)
	}

	return nil
}

func (r *RegistrationRepository) GetActive(ctx context.Context, eventID, userEmail string) (*domain.EventRegistration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM event_registrations
			  WHERE event_id = $1 AND user_email = $2 AND status = $3
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userEmail, domain.RegistrationStatusRegistered)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, storeErr("get registration", err)
	}

	var reg domain.EventRegistration
	if err = row.Scan(
		&reg.ID, &reg.EventID, &reg.ClubID, &reg.UserEmail,
		&reg.Status, &reg.PaymentID, &reg.RegisteredAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, storeErr("scan registration", err)
	}

	return &reg, nil
}
