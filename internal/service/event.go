package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.Detailf(domain.ErrValidation, "title is required")
	}
	if input.ClubID == "" {
		return nil, domain.Detailf(domain.ErrValidation, "club_id is required")
	}
	if input.Price.IsNegative() {
		return nil, domain.Detailf(domain.ErrValidation, "price must not be negative")
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		ClubID:      input.ClubID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		Price:       input.Price,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) List(ctx context.Context, clubID string) ([]*domain.Event, error) {
	return s.repo.List(ctx, clubID)
}
