package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const eventColumns = `id, club_id, title, description, event_date, location, price, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	if err := s.Scan(
		&e.ID, &e.ClubID, &e.Title, &e.Description,
		&e.Date, &e.Location, &e.Price, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.ClubID, e.Title, e.Description,
		e.Date, e.Location, e.Price, e.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrClubNotFound
		}
		return storeErr("insert event", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, storeErr("get event", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, storeErr("scan event", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, clubID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE $1 = '' OR club_id::text = $1
			  ORDER BY event_date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, clubID)
	if err != nil {
		return nil, storeErr("list events", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, storeErr("scan event", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, r.strategy, `SELECT COUNT(*) FROM events`)
}

func count(ctx context.Context, db *dbpg.DB, strategy retry.Strategy, query string, args ...any) (int, error) {
	row, err := db.QueryRowWithRetry(ctx, strategy, query, args...)
	if err != nil {
		return 0, storeErr("count", err)
	}
	var n int
	if err = row.Scan(&n); err != nil {
		return 0, storeErr("scan count", err)
	}
	return n, nil
}
