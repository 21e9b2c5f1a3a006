package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// Entity kind discriminators for the shared status_history table.
const (
	entityKindDonation      = "donation"
	entityKindMoneyDonation = "money_donation"
	entityKindRequest       = "shoe_request"
	entityKindOrder         = "order"
	entityKindVolunteer     = "volunteer"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back a transaction. Calling it after a successful commit is
// a no-op, so callers can defer it unconditionally.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// pgxQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func insertStatusHistory(ctx context.Context, tx pgx.Tx, entityKind, entityID string, entry domain.StatusHistoryEntry) error {
	query := `
		INSERT INTO status_history (history_id, entity_kind, entity_id, status, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query, uuid.NewString(), entityKind, entityID, entry.Status, entry.Note, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}
	return nil
}

func loadStatusHistory(ctx context.Context, q pgxQuerier, entityKind, entityID string) ([]domain.StatusHistoryEntry, error) {
	byID, err := loadStatusHistoryBatch(ctx, q, entityKind, []string{entityID})
	if err != nil {
		return nil, err
	}
	return byID[entityID], nil
}

func loadStatusHistoryBatch(ctx context.Context, q pgxQuerier, entityKind string, entityIDs []string) (map[string][]domain.StatusHistoryEntry, error) {
	if len(entityIDs) == 0 {
		return map[string][]domain.StatusHistoryEntry{}, nil
	}
	query := `
		SELECT entity_id, status, note, created_at
		FROM status_history
		WHERE entity_kind = $1 AND entity_id = ANY($2)
		ORDER BY created_at ASC, history_id ASC;
	`
	rows, err := q.Query(ctx, query, entityKind, entityIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.StatusHistoryEntry, len(entityIDs))
	for rows.Next() {
		var entityID string
		var entry domain.StatusHistoryEntry
		if err := rows.Scan(&entityID, &entry.Status, &entry.Note, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan status history row: %w", err)
		}
		out[entityID] = append(out[entityID], entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status history rows: %w", err)
	}
	return out, nil
}

// adjustShoeInventory applies a count delta and status flip to the given
// shoes inside tx. Decrements floor at zero so the inventory CHECK can never
// trip even if compensation runs twice.
func adjustShoeInventory(ctx context.Context, tx pgx.Tx, shoeIDs []string, countDelta int, status domain.ShoeStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE shoes
		SET inventory_count = GREATEST(inventory_count + $1, 0),
		    status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE shoe_id = ANY($5);
	`
	_, err := tx.Exec(ctx, query, countDelta, string(status), updatedAt, updatedBy, shoeIDs)
	if err != nil {
		return fmt.Errorf("failed to adjust shoe inventory: %w", err)
	}
	return nil
}
