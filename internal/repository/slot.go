package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/medportal/slotbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	query := `INSERT INTO slots (id, resource_type, slot_date, start_time, end_time, location, available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.ResourceType, s.Date, s.StartTime, s.EndTime,
		s.Location, s.Available, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}

	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT id, resource_type, slot_date, start_time, end_time, location, available, created_at, updated_at
			  FROM slots
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	var s domain.Slot
	if err = row.Scan(
		&s.ID, &s.ResourceType, &s.Date, &s.StartTime, &s.EndTime,
		&s.Location, &s.Available, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

func (r *SlotRepository) ListOpen(ctx context.Context, rt domain.ResourceType, from, to time.Time) ([]*domain.Slot, error) {
	query := `SELECT id, resource_type, slot_date, start_time, end_time, location, available, created_at, updated_at
			  FROM slots
			  WHERE resource_type = $1
			    AND available = TRUE
			    AND slot_date BETWEEN $2 AND $3
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, rt, from, to)
	if err != nil {
		return nil, fmt.Errorf("list open slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err = rows.Scan(
			&s.ID, &s.ResourceType, &s.Date, &s.StartTime, &s.EndTime,
			&s.Location, &s.Available, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

// Claim is the atomic claim: flip availability, insert the booking and stage
// the outbox event as one transaction. Two requests can both pass the
// service-level validity check; the conditional UPDATE decides the winner at
// the storage layer. The partial unique index on bookings(slot_id) backs the
// same guarantee a second time.
func (r *SlotRepository) Claim(ctx context.Context, b *domain.Booking, event domain.SlotEvent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	flipQuery := `UPDATE slots
				  SET available = FALSE, updated_at = now()
				  WHERE id = $1 AND available = TRUE`
	res, err := tx.ExecContext(ctx, flipQuery, b.SlotID)
	if err != nil {
		return fmt.Errorf("flip slot availability: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("flip rows affected: %w", err)
	}
	if affected == 0 {
		// Either the slot does not exist or another request flipped it first.
		var exists bool
		if err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM slots WHERE id = $1)`, b.SlotID).Scan(&exists); err != nil {
			return fmt.Errorf("check slot exists: %w", err)
		}
		if !exists {
			return domain.ErrSlotNotFound
		}
		return domain.ErrSlotClaimed
	}

	insertQuery := `INSERT INTO bookings (id, slot_id, user_id, guest_name, guest_email, guest_phone, status, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.SlotID, b.UserID, b.GuestName, b.GuestEmail, b.GuestPhone,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotClaimed
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = insertOutboxEvent(ctx, tx, event); err != nil {
		return fmt.Errorf("stage event: %w", err)
	}

	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertOutboxEvent(ctx context.Context, ex execer, event domain.SlotEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	query := `INSERT INTO outbox_events (id, event_type, payload, created_at, published)
			  VALUES ($1, $2, $3, now(), FALSE)`
	_, err = ex.ExecContext(ctx, query, uuid.New().String(), event.Type, payload)
	return err
}
