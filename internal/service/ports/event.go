package ports

import (
	"context"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List returns events ordered by date ascending. An empty clubID lists all.
	List(ctx context.Context, clubID string) ([]*domain.Event, error)
	Count(ctx context.Context) (int, error)
}

// EventInvalidator drops cached copies of events removed by a club delete.
type EventInvalidator interface {
	Invalidate(ctx context.Context, ids ...string) error
}
