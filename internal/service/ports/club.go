package ports

import (
	"context"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
)

type ClubRepo interface {
	Create(ctx context.Context, c *domain.Club) error
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	// List returns clubs ordered by created_at descending. An empty status
	// lists every club.
	List(ctx context.Context, status domain.ClubStatus) ([]*domain.Club, error)
	UpdateStatus(ctx context.Context, id string, status domain.ClubStatus) error
	Update(ctx context.Context, c *domain.Club) error
	// Delete removes the club with its memberships, events and payments.
	Delete(ctx context.Context, id string) (*domain.ClubDeletion, error)
	Count(ctx context.Context, status domain.ClubStatus) (int, error)
}

type MembershipRepo interface {
	Count(ctx context.Context) (int, error)
}
