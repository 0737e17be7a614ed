package service

import (
	"context"
	"fmt"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
)

type AdminService struct {
	users       ports.UserRepo
	clubs       ports.ClubRepo
	memberships ports.MembershipRepo
	events      ports.EventRepo
	payments    ports.PaymentRepo
}

func NewAdminService(
	users ports.UserRepo,
	clubs ports.ClubRepo,
	memberships ports.MembershipRepo,
	events ports.EventRepo,
	payments ports.PaymentRepo,
) *AdminService {
	return &AdminService{
		users:       users,
		clubs:       clubs,
		memberships: memberships,
		events:      events,
		payments:    payments,
	}
}

func (s *AdminService) Overview(ctx context.Context) (*domain.Overview, error) {
	var (
		o   domain.Overview
		err error
	)

	if o.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if o.TotalClubs, err = s.clubs.Count(ctx, ""); err != nil {
		return nil, fmt.Errorf("count clubs: %w", err)
	}
	if o.PendingClubs, err = s.clubs.Count(ctx, domain.ClubStatusPending); err != nil {
		return nil, fmt.Errorf("count pending clubs: %w", err)
	}
	if o.ApprovedClubs, err = s.clubs.Count(ctx, domain.ClubStatusApproved); err != nil {
		return nil, fmt.Errorf("count approved clubs: %w", err)
	}
	if o.TotalMemberships, err = s.memberships.Count(ctx); err != nil {
		return nil, fmt.Errorf("count memberships: %w", err)
	}
	if o.TotalEvents, err = s.events.Count(ctx); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	if o.TotalPayments, err = s.payments.TotalAmount(ctx); err != nil {
		return nil, fmt.Errorf("sum payments: %w", err)
	}

	return &o, nil
}
