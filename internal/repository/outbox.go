package repository

import (
	"context"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OutboxRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOutboxRepo(db *dbpg.DB) *OutboxRepository {
	return &OutboxRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *OutboxRepository) ListUnpublished(ctx context.Context, limit int) ([]*domain.OutboxMessage, error) {
	query := `SELECT id, aggregate_id, event_type, payload, created_at, published_at
			  FROM payment_outbox
			  WHERE published_at IS NULL
			  ORDER BY created_at ASC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, storeErr("list outbox", err)
	}
	defer rows.Close()

	var res []*domain.OutboxMessage
	for rows.Next() {
		var m domain.OutboxMessage
		if err = rows.Scan(&m.ID, &m.AggregateID, &m.EventType, &m.Payload, &m.CreatedAt, &m.PublishedAt); err != nil {
			return nil, storeErr("scan outbox", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id string) error {
	query := `UPDATE payment_outbox SET published_at = now() WHERE id = $1 AND published_at IS NULL`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return storeErr("mark outbox published", err)
	}
	return nil
}
