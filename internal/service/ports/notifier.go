package ports

import (
	"context"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
)

type OutboxRepo interface {
	ListUnpublished(ctx context.Context, limit int) ([]*domain.OutboxMessage, error)
	MarkPublished(ctx context.Context, id string) error
}

// OutboxSink receives relayed outbox messages. Publish must be safe to call
// again for a message it has already accepted.
type OutboxSink interface {
	Name() string
	Publish(ctx context.Context, msg *domain.OutboxMessage) error
}
