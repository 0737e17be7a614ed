package service

import (
	"context"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
)

type PaymentService struct {
	repo ports.PaymentRepo
}

func NewPaymentService(repo ports.PaymentRepo) *PaymentService {
	return &PaymentService{repo: repo}
}

// List returns the payments of email, newest first. A non-empty email must
// match the verified principal. An empty email lists every payment.
func (s *PaymentService) List(ctx context.Context, email, verifiedEmail string) ([]*domain.Payment, error) {
	if email != "" && email != verifiedEmail {
		return nil, domain.ErrEmailMismatch
	}
	return s.repo.ListByEmail(ctx, email)
}
