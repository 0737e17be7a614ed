package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ClubRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClubRepo(db *dbpg.DB) *ClubRepository {
	return &ClubRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const clubColumns = `id, club_name, description, image, banner_image, location, category,
	membership_fee, created_by_email, status, created_at, updated_at`

func scanClub(s scanner) (*domain.Club, error) {
	var c domain.Club
	if err := s.Scan(
		&c.ID, &c.ClubName, &c.Description, &c.Image, &c.BannerImage, &c.Location, &c.Category,
		&c.MembershipFee, &c.CreatedByEmail, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClubRepository) Create(ctx context.Context, c *domain.Club) error {
	query := `INSERT INTO clubs (` + clubColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.ClubName, c.Description, c.Image, c.BannerImage, c.Location, c.Category,
		c.MembershipFee, c.CreatedByEmail, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert club", err)
	}
	return nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClubNotFound
		}
		return nil, storeErr("get club", err)
	}

	c, err := scanClub(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClubNotFound
		}
		return nil, storeErr("scan club", err)
	}

	return c, nil
}

func (r *ClubRepository) List(ctx context.Context, status domain.ClubStatus) ([]*domain.Club, error) {
	query := `SELECT ` + clubColumns + `
			  FROM clubs
			  WHERE $1 = '' OR status = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(status))
	if err != nil {
		return nil, storeErr("list clubs", err)
	}
	defer rows.Close()

	res := make([]*domain.Club, 0)
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, storeErr("scan club", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *ClubRepository) UpdateStatus(ctx context.Context, id string, status domain.ClubStatus) error {
	query := `UPDATE clubs SET status = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, string(status))
	if err != nil {
		return storeErr("update club status", err)
	}
	return requireAffected(res, domain.ErrClubNotFound)
}

func (r *ClubRepository) Update(ctx context.Context, c *domain.Club) error {
	query := `UPDATE clubs
			  SET club_name = $2, description = $3, location = $4, membership_fee = $5,
			      category = $6, banner_image = $7, updated_at = $8
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.ClubName, c.Description, c.Location, c.MembershipFee,
		c.Category, c.BannerImage, c.UpdatedAt,
	)
	if err != nil {
		return storeErr("update club", err)
	}
	return requireAffected(res, domain.ErrClubNotFound)
}

// Delete removes the club together with its memberships, payments,
// registrations and events.
func (r *ClubRepository) Delete(ctx context.Context, id string) (*domain.ClubDeletion, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM memberships WHERE club_id = $1`,
		`DELETE FROM payments WHERE club_id = $1`,
		`DELETE FROM event_registrations WHERE club_id = $1`,
	} {
		if _, err = tx.ExecContext(ctx, q, id); err != nil {
			return nil, storeErr("cascade club delete", err)
		}
	}

	rows, err := tx.QueryContext(ctx, `DELETE FROM events WHERE club_id = $1 RETURNING id`, id)
	if err != nil {
		return nil, storeErr("delete club events", err)
	}
	var eventIDs []string
	for rows.Next() {
		var eventID string
		if err = rows.Scan(&eventID); err != nil {
			rows.Close()
			return nil, storeErr("scan event id", err)
		}
		eventIDs = append(eventIDs, eventID)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, storeErr("delete club events", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return nil, storeErr("delete club", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, storeErr("club rows affected", err)
	}
	if n == 0 {
		return nil, domain.ErrClubNotFound
	}

	if err = tx.Commit(); err != nil {
		return nil, storeErr("commit club delete", err)
	}

	return &domain.ClubDeletion{DeletedCount: int(n), EventIDs: eventIDs}, nil
}

func (r *ClubRepository) Count(ctx context.Context, status domain.ClubStatus) (int, error) {
	return count(ctx, r.db, r.strategy,
		`SELECT COUNT(*) FROM clubs WHERE $1 = '' OR status = $1`, string(status))
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
