package repository

import (
	"context"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type MembershipRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMembershipRepo(db *dbpg.DB) *MembershipRepository {
	return &MembershipRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *MembershipRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, r.strategy,
		`SELECT COUNT(*) FROM memberships WHERE status = $1`, domain.MembershipStatusActive)
}
