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

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func toModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:       d.OrderID,
		ReferenceID:   d.ReferenceID,
		RequestID:     d.RequestID,
		RecipientName: d.RecipientName,
		Email:         d.Email,
		Street:        d.Street,
		City:          d.City,
		State:         d.State,
		ZipCode:       d.ZipCode,
		TrackingCode:  d.TrackingCode,
		Status:        string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:       m.OrderID,
		ReferenceID:   m.ReferenceID,
		RequestID:     m.RequestID,
		RecipientName: m.RecipientName,
		Email:         m.Email,
		Street:        m.Street,
		City:          m.City,
		State:         m.State,
		ZipCode:       m.ZipCode,
		TrackingCode:  m.TrackingCode,
		Status:        domain.OrderStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const orderColumns = `order_id, reference_id, request_id, recipient_name, email, street, city, state, zip_code, tracking_code, status, created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.ReferenceID,
		&m.RequestID,
		&m.RecipientName,
		&m.Email,
		&m.Street,
		&m.City,
		&m.State,
		&m.ZipCode,
		&m.TrackingCode,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelOrder(order)
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		m.OrderID, m.ReferenceID, m.RequestID, m.RecipientName, m.Email,
		m.Street, m.City, m.State, m.ZipCode, m.TrackingCode, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	itemQuery := `INSERT INTO order_items (item_id, order_id, shoe_id) VALUES ($1, $2, $3);`
	for _, item := range order.Items {
		if _, err := tx.Exec(ctx, itemQuery, item.ItemID, order.OrderID, item.ShoeID); err != nil {
			return fmt.Errorf("failed to save order item: %w", err)
		}
	}

	for _, entry := range order.StatusHistory {
		if err := insertStatusHistory(ctx, tx, entityKindOrder, order.OrderID, entry); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxOrderRepository) FindOrderByReferenceID(ctx context.Context, referenceID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE reference_id = $1;`
	m, err := scanOrder(r.Pool.QueryRow(ctx, query, referenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", referenceID, err)
	}

	d := toDomainOrder(m)
	items, err := r.loadItems(ctx, []string{d.OrderID})
	if err != nil {
		return nil, err
	}
	d.Items = items[d.OrderID]
	d.StatusHistory, err = loadStatusHistory(ctx, r.Pool, entityKindOrder, d.OrderID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxOrderRepository) OrderReferenceIDExists(ctx context.Context, referenceID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE reference_id = $1);`, referenceID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check order reference id: %w", err)
	}
	return exists, nil
}

func (r *PgxOrderRepository) ListOrders(ctx context.Context, limit int, nextToken *string) ([]domain.Order, *string, error) {
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
		SELECT ` + orderColumns + `
		FROM orders
		WHERE ($1::timestamptz IS NULL OR (created_at, order_id) < ($1::timestamptz, $2::text))
		ORDER BY created_at DESC, order_id DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, cursorTime, cursorID, limit+1)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var ms []models.Order
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read order rows: %w", err)
	}

	var newToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.OrderID)
		newToken = &token
	}

	ids := make([]string, len(ms))
	out := make([]domain.Order, len(ms))
	for i, m := range ms {
		ids[i] = m.OrderID
		out[i] = toDomainOrder(m)
	}
	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	histories, err := loadStatusHistoryBatch(ctx, r.Pool, entityKindOrder, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range out {
		out[i].Items = items[out[i].OrderID]
		out[i].StatusHistory = histories[out[i].OrderID]
	}
	return out, newToken, nil
}

func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, entry domain.StatusHistoryEntry, shoeStatus *domain.ShoeStatus, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE orders
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE order_id = $4;
	`
	tag, err := tx.Exec(ctx, query, string(status), entry.CreatedAt, updatedBy, orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Flip the order's shoes in the same transaction when the change ships
	// or cancels the shipment.
	if shoeStatus != nil {
		shoeQuery := `
			UPDATE shoes
			SET status = $1, last_updated_at = $2, last_updated_by = $3
			WHERE shoe_id IN (SELECT shoe_id FROM order_items WHERE order_id = $4);
		`
		if _, err := tx.Exec(ctx, shoeQuery, string(*shoeStatus), entry.CreatedAt, updatedBy, orderID); err != nil {
			return fmt.Errorf("failed to update order shoes: %w", err)
		}
	}

	if err := insertStatusHistory(ctx, tx, entityKindOrder, orderID, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxOrderRepository) loadItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	if len(orderIDs) == 0 {
		return map[string][]domain.OrderItem{}, nil
	}
	query := `
		SELECT item_id, order_id, shoe_id
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, item_id;
	`
	rows, err := r.Pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := rows.Scan(&item.ItemID, &orderID, &item.ShoeID); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		out[orderID] = append(out[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order item rows: %w", err)
	}
	return out, nil
}
