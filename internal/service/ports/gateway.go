package ports

import (
	"context"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
)

type CheckoutGateway interface {
	CreateSession(ctx context.Context, req domain.CheckoutSessionRequest) (*domain.CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
}

type TrackingIDGenerator interface {
	NewTrackingID() (string, error)
}
