package service

import (
	"context"
	"fmt"

	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultOutboxBatch = 50

// OutboxService relays unpublished outbox messages to every sink. A message
// is marked published only after all sinks accepted it, so a failing sink
// causes redelivery to the others on the next run.
type OutboxService struct {
	repo      ports.OutboxRepo
	sinks     []ports.OutboxSink
	batchSize int
	logger    logger.Logger
}

func NewOutboxService(repo ports.OutboxRepo, sinks []ports.OutboxSink, batchSize int, logger logger.Logger) *OutboxService {
	if batchSize <= 0 {
		batchSize = defaultOutboxBatch
	}
	return &OutboxService{repo: repo, sinks: sinks, batchSize: batchSize, logger: logger}
}

// RelayPending publishes one batch and returns how many messages were
// marked published.
func (s *OutboxService) RelayPending(ctx context.Context) (int, error) {
	msgs, err := s.repo.ListUnpublished(ctx, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list outbox: %w", err)
	}

	published := 0
	for _, msg := range msgs {
		delivered := true
		for _, sink := range s.sinks {
			if err := sink.Publish(ctx, msg); err != nil {
				delivered = false
				s.logger.Error("outbox publish failed",
					logger.String("message_id", msg.ID),
					logger.String("sink", sink.Name()),
					logger.String("error", err.Error()),
				)
			}
		}
		if !delivered {
			continue
		}

		if err := s.repo.MarkPublished(ctx, msg.ID); err != nil {
			return published, fmt.Errorf("mark published %s: %w", msg.ID, err)
		}
		published++
	}

	return published, nil
}
