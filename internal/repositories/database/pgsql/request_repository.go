package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newstepsproject/backend/internal/apperrors"
	"github.com/newstepsproject/backend/internal/core/domain"
	portsrepo "github.com/newstepsproject/backend/internal/core/ports/repositories"
	"github.com/newstepsproject/backend/internal/models"
	"github.com/newstepsproject/backend/internal/utils/pagination"
)

type PgxRequestRepository struct {
	BaseRepository
}

func newPgxRequestRepository(db *pgxpool.Pool) portsrepo.RequestRepositoryFacade {
	return &PgxRequestRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.RequestRepositoryFacade = (*PgxRequestRepository)(nil)

func toModelRequest(d domain.ShoeRequest) models.ShoeRequest {
	return models.ShoeRequest{
		RequestID:     d.RequestID,
		ReferenceID:   d.ReferenceID,
		RequesterName: d.RequesterName,
		Email:         d.Email,
		Phone:         d.Phone,
		Street:        d.Street,
		City:          d.City,
		State:         d.State,
		ZipCode:       d.ZipCode,
		Notes:         d.Notes,
		Status:        string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainRequest(m models.ShoeRequest) domain.ShoeRequest {
	return domain.ShoeRequest{
		RequestID:     m.RequestID,
		ReferenceID:   m.ReferenceID,
		RequesterName: m.RequesterName,
		Email:         m.Email,
		Phone:         m.Phone,
		Street:        m.Street,
		City:          m.City,
		State:         m.State,
		ZipCode:       m.ZipCode,
		Notes:         m.Notes,
		Status:        domain.RequestStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const requestColumns = `request_id, reference_id, requester_name, email, phone, street, city, state, zip_code, notes, status, created_at, created_by, last_updated_at, last_updated_by`

func scanRequest(row pgx.Row) (models.ShoeRequest, error) {
	var m models.ShoeRequest
	err := row.Scan(
		&m.RequestID,
		&m.ReferenceID,
		&m.RequesterName,
		&m.Email,
		&m.Phone,
		&m.Street,
		&m.City,
		&m.State,
		&m.ZipCode,
		&m.Notes,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRequestRepository) SaveRequest(ctx context.Context, request domain.ShoeRequest, reserveShoeIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelRequest(request)
	query := `
		INSERT INTO shoe_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		m.RequestID, m.ReferenceID, m.RequesterName, m.Email, m.Phone,
		m.Street, m.City, m.State, m.ZipCode, m.Notes, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}

	itemQuery := `
		INSERT INTO shoe_request_items (item_id, request_id, position, shoe_id, brand, sport, gender, size, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for i, item := range request.Items {
		_, err := tx.Exec(ctx, itemQuery,
			item.ItemID, request.RequestID, i, item.ShoeID,
			item.Brand, item.Sport, item.Gender, item.Size, item.Notes,
		)
		if err != nil {
			return fmt.Errorf("failed to save request item: %w", err)
		}
	}

	// Reservation flips the bound shoes to requested without touching their
	// counts; the count only moves when a rejection hands stock back.
	if len(reserveShoeIDs) > 0 {
		reserveQuery := `
			UPDATE shoes
			SET status = $1, last_updated_at = $2, last_updated_by = $3
			WHERE shoe_id = ANY($4);
		`
		_, err := tx.Exec(ctx, reserveQuery, string(domain.ShoeRequested), request.CreatedAt, request.CreatedBy, reserveShoeIDs)
		if err != nil {
			return fmt.Errorf("failed to reserve shoes: %w", err)
		}
	}

	for _, entry := range request.StatusHistory {
		if err := insertStatusHistory(ctx, tx, entityKindRequest, request.RequestID, entry); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxRequestRepository) FindRequestByReferenceID(ctx context.Context, referenceID string) (*domain.ShoeRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM shoe_requests WHERE reference_id = $1;`
	m, err := scanRequest(r.Pool.QueryRow(ctx, query, referenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request %s: %w", referenceID, err)
	}

	d := toDomainRequest(m)
	items, err := r.loadItems(ctx, []string{d.RequestID})
	if err != nil {
		return nil, err
	}
	d.Items = items[d.RequestID]
	d.StatusHistory, err = loadStatusHistory(ctx, r.Pool, entityKindRequest, d.RequestID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxRequestRepository) RequestReferenceIDExists(ctx context.Context, referenceID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM shoe_requests WHERE reference_id = $1);`, referenceID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check request reference id: %w", err)
	}
	return exists, nil
}

func (r *PgxRequestRepository) ListRequests(ctx context.Context, limit int, nextToken *string) ([]domain.ShoeRequest, *string, error) {
	var cursorTime *time.Time
	var cursorID *string
	if nextToken != nil && *nextToken != "" {
		t, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", apperrors.ErrValidation)
		}
		cursorTime, cursorID = &t, &id
	}

	query := `
		SELECT ` + requestColumns + `
		FROM shoe_requests
		WHERE ($1::timestamptz IS NULL OR (created_at, request_id) < ($1::timestamptz, $2::text))
		ORDER BY created_at DESC, request_id DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, cursorTime, cursorID, limit+1)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	var ms []models.ShoeRequest
	for rows.Next() {
		m, err := scanRequest(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read request rows: %w", err)
	}

	var newToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.RequestID)
		newToken = &token
	}

	ids := make([]string, len(ms))
	out := make([]domain.ShoeRequest, len(ms))
	for i, m := range ms {
		ids[i] = m.RequestID
		out[i] = toDomainRequest(m)
	}
	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	histories, err := loadStatusHistoryBatch(ctx, r.Pool, entityKindRequest, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].RequestID]
		out[i].StatusHistory = histories[out[i].RequestID]
	}
	return out, newToken, nil
}

func (r *PgxRequestRepository) UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus, entry domain.StatusHistoryEntry, comp *portsrepo.InventoryCompensation, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE shoe_requests
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE request_id = $4;
	`
	tag, err := tx.Exec(ctx, query, string(status), entry.CreatedAt, updatedBy, requestID)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Inventory compensation rides the same transaction: either the status
	// change and the stock adjustment both land or neither does.
	if comp != nil && len(comp.ShoeIDs) > 0 {
		if err := adjustShoeInventory(ctx, tx, comp.ShoeIDs, comp.CountDelta, comp.NewStatus, updatedBy, entry.CreatedAt); err != nil {
			return err
		}
	}

	if err := insertStatusHistory(ctx, tx, entityKindRequest, requestID, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxRequestRepository) loadItems(ctx context.Context, requestIDs []string) (map[string][]domain.RequestItem, error) {
	if len(requestIDs) == 0 {
		return map[string][]domain.RequestItem{}, nil
	}
	query := `
		SELECT item_id, request_id, shoe_id, brand, sport, gender, size, notes
		FROM shoe_request_items
		WHERE request_id = ANY($1)
		ORDER BY request_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query request items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.RequestItem, len(requestIDs))
	for rows.Next() {
		var requestID string
		var item domain.RequestItem
		if err := rows.Scan(&item.ItemID, &requestID, &item.ShoeID, &item.Brand, &item.Sport, &item.Gender, &item.Size, &item.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan request item row: %w", err)
		}
		out[requestID] = append(out[requestID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read request item rows: %w", err)
	}
	return out, nil
}
