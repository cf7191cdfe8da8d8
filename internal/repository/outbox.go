package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/medportal/slotbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OutboxRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOutboxRepo(db *dbpg.DB) *OutboxRepository {
	return &OutboxRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OutboxRepository) ListUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	query := `SELECT id, event_type, payload, created_at
			  FROM outbox_events
			  WHERE published = FALSE
			  ORDER BY created_at
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list unpublished events: %w", err)
	}
	defer rows.Close()

	var res []*domain.OutboxEvent
	for rows.Next() {
		var e domain.OutboxEvent
		if err = rows.Scan(&e.ID, &e.EventType, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE outbox_events SET published = TRUE WHERE id = ANY($1)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("mark published: %w", err)
	}

	return nil
}
