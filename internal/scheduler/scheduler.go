package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type outboxRelayer interface {
	RelayPending(ctx context.Context) (int, error)
}

// Scheduler periodically drains the payment outbox.
type Scheduler struct {
	relayer  outboxRelayer
	interval time.Duration
	logger   logger.Logger
}

func New(
	relayer outboxRelayer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		relayer:  relayer,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("outbox relay started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	published, err := s.relayer.RelayPending(ctx)
	if err != nil {
		s.logger.Error("failed to relay outbox",
			logger.String("error", err.Error()),
			logger.Int("published", published),
		)
		return
	}

	if published > 0 {
		s.logger.Info("outbox published",
			logger.Int("messages", published),
		)
	}
}
