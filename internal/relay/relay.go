package relay

import (
	"context"
	"time"

	"github.com/medportal/slotbooker/internal/domain"
	"github.com/medportal/slotbooker/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

type outboxSource interface {
	ListUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, ids []string) error
}

type eventSink interface {
	Publish(ctx context.Context, key string, body []byte) error
}

// Relay drains the outbox: events staged inside claim transactions are
// published to the broker here, after the fact. A broker outage delays
// publication, never a commit.
type Relay struct {
	outbox    outboxSource
	sink      eventSink
	interval  time.Duration
	batchSize int
	logger    logger.Logger
}

func New(
	outbox outboxSource,
	sink eventSink,
	interval time.Duration,
	batchSize int,
	logger logger.Logger,
) *Relay {
	return &Relay{
		outbox:    outbox,
		sink:      sink,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (r *Relay) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("outbox relay started",
		logger.Duration("interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Relay) tick(ctx context.Context) {
	events, err := r.outbox.ListUnpublished(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("failed to read outbox",
			logger.String("error", err.Error()),
		)
		return
	}

	published := make([]string, 0, len(events))
	for _, e := range events {
		if err = r.sink.Publish(ctx, e.EventType, e.Payload); err != nil {
			// Leave the rest unmarked; they will be retried next tick.
			r.logger.Error("failed to publish event",
				logger.String("event_id", e.ID),
				logger.String("event_type", e.EventType),
				logger.String("error", err.Error()),
			)
			break
		}
		published = append(published, e.ID)
	}

	if len(published) == 0 {
		return
	}

	if err = r.outbox.MarkPublished(ctx, published); err != nil {
		// Events stay unmarked and will be re-published; consumers are
		// expected to dedupe on booking id.
		r.logger.Error("failed to mark events published",
			logger.String("error", err.Error()),
		)
		return
	}

	metrics.OutboxPublished.Add(float64(len(published)))
	r.logger.Info("events relayed",
		logger.Int("count", len(published)),
	)
}
