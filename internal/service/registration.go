package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RegistrationService writes free registrations. Paid ones are created by
// ReconciliationService.
type RegistrationService struct {
	eventRepo        ports.EventRepo
	registrationRepo ports.RegistrationRepo
	logger           logger.Logger
	timeout          time.Duration
}

func NewRegistrationService(
	eventRepo ports.EventRepo,
	registrationRepo ports.RegistrationRepo,
	logger logger.Logger,
	timeout time.Duration,
) *RegistrationService {
	return &RegistrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		logger:           logger,
		timeout:          timeout,
	}
}

// Register creates an active registration for userEmail, which must come
// from the identity verifier.
func (s *RegistrationService) Register(ctx context.Context, eventID, userEmail string) (*domain.EventRegistration, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	_, err = s.registrationRepo.GetActive(ctx, eventID, userEmail)
	switch {
	case err == nil:
		return nil, domain.ErrAlreadyRegistered
	case !errors.Is(err, domain.ErrRegistrationNotFound):
		return nil, fmt.Errorf("check registration: %w", err)
	}

	reg := &domain.EventRegistration{
		ID:           uuid.New().String(),
		EventID:      eventID,
		ClubID:       event.ClubID,
		UserEmail:    userEmail,
		Status:       domain.RegistrationStatusRegistered,
		RegisteredAt: time.Now().UTC(),
	}

	// a concurrent insert that won the race surfaces here as ErrAlreadyRegistered
	if err = s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_email", userEmail),
	)

	return reg, nil
}
