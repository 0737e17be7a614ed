package ports

import (
	"context"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
)

type RegistrationRepo interface {
	// Create returns domain.ErrAlreadyRegistered when an active registration
	// for the same event and user already exists.
	Create(ctx context.Context, r *domain.EventRegistration) error
	GetActive(ctx context.Context, eventID, userEmail string) (*domain.EventRegistration, error)
}
