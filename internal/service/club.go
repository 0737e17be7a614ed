package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ClubService struct {
	repo   ports.ClubRepo
	events ports.EventInvalidator
	logger logger.Logger
}

func NewClubService(repo ports.ClubRepo, events ports.EventInvalidator, logger logger.Logger) *ClubService {
	return &ClubService{repo: repo, events: events, logger: logger}
}

func (s *ClubService) Create(ctx context.Context, input domain.CreateClubInput) (*domain.Club, error) {
	if strings.TrimSpace(input.ClubName) == "" {
		return nil, domain.Detailf(domain.ErrValidation, "club name is required")
	}
	if input.MembershipFee.IsNegative() {
		return nil, domain.Detailf(domain.ErrValidation, "membership fee must not be negative")
	}

	now := time.Now().UTC()
	club := &domain.Club{
		ID:             uuid.New().String(),
		ClubName:       input.ClubName,
		Description:    input.Description,
		Image:          input.Image,
		BannerImage:    input.BannerImage,
		Location:       input.Location,
		Category:       input.Category,
		MembershipFee:  input.MembershipFee,
		CreatedByEmail: input.CreatedByEmail,
		Status:         domain.ClubStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, club); err != nil {
		return nil, fmt.Errorf("create club: %w", err)
	}

	return club, nil
}

func (s *ClubService) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClubService) ListApproved(ctx context.Context) ([]*domain.Club, error) {
	return s.repo.List(ctx, domain.ClubStatusApproved)
}

func (s *ClubService) ListAll(ctx context.Context) ([]*domain.Club, error) {
	return s.repo.List(ctx, "")
}

func (s *ClubService) UpdateStatus(ctx context.Context, id string, status domain.ClubStatus) error {
	if !status.Valid() {
		return domain.Detailf(domain.ErrValidation, "unknown club status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update club status: %w", err)
	}
	s.logger.Info("club status changed",
		logger.String("club_id", id),
		logger.String("status", string(status)),
	)
	return nil
}

// Update applies patch on behalf of editorEmail, who must own the club.
func (s *ClubService) Update(ctx context.Context, id, editorEmail string, patch domain.ClubPatch) (*domain.Club, error) {
	club, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get club: %w", err)
	}
	if club.CreatedByEmail != editorEmail {
		return nil, domain.ErrNotClubOwner
	}
	if patch.MembershipFee != nil && patch.MembershipFee.IsNegative() {
		return nil, domain.Detailf(domain.ErrValidation, "membership fee must not be negative")
	}

	updated := patch.Apply(*club)
	updated.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update club: %w", err)
	}

	return &updated, nil
}

// Delete removes the club and everything that references it.
func (s *ClubService) Delete(ctx context.Context, id string) (int, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete club: %w", err)
	}

	if len(res.EventIDs) > 0 {
		if err = s.events.Invalidate(ctx, res.EventIDs...); err != nil {
			s.logger.Warn("failed to invalidate cached events",
				logger.String("club_id", id),
				logger.String("error", err.Error()),
			)
		}
	}

	s.logger.Info("club deleted",
		logger.String("club_id", id),
		logger.Int("events_removed", len(res.EventIDs)),
	)

	return res.DeletedCount, nil
}
