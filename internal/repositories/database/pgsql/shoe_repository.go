package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newstepsproject/backend/internal/apperrors"
	"github.com/newstepsproject/backend/internal/core/domain"
	portsrepo "github.com/newstepsproject/backend/internal/core/ports/repositories"
	"github.com/newstepsproject/backend/internal/models"
)

type PgxShoeRepository struct {
	BaseRepository
}

func newPgxShoeRepository(db *pgxpool.Pool) portsrepo.ShoeRepositoryFacade {
	return &PgxShoeRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ShoeRepositoryFacade = (*PgxShoeRepository)(nil)

func toModelShoe(d domain.Shoe) models.Shoe {
	return models.Shoe{
		ShoeID:         d.ShoeID,
		DonationID:     d.DonationID,
		Brand:          d.Brand,
		ModelName:      d.ModelName,
		Gender:         d.Gender,
		Sport:          d.Sport,
		Size:           d.Size,
		Condition:      d.Condition,
		Status:         string(d.Status),
		InventoryCount: d.InventoryCount,
		ImageURL:       d.ImageURL,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
}

func toDomainShoe(m models.Shoe) domain.Shoe {
	return domain.Shoe{
		ShoeID:         m.ShoeID,
		DonationID:     m.DonationID,
		Brand:          m.Brand,
		ModelName:      m.ModelName,
		Gender:         m.Gender,
		Sport:          m.Sport,
		Size:           m.Size,
		Condition:      m.Condition,
		Status:         domain.ShoeStatus(m.Status),
		InventoryCount: m.InventoryCount,
		ImageURL:       m.ImageURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}

const shoeColumns = `shoe_id, donation_id, brand, model_name, gender, sport, size, condition, status, inventory_count, image_url, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanShoe(row pgx.Row) (models.Shoe, error) {
	var m models.Shoe
	err := row.Scan(
		&m.ShoeID,
		&m.DonationID,
		&m.Brand,
		&m.ModelName,
		&m.Gender,
		&m.Sport,
		&m.Size,
		&m.Condition,
		&m.Status,
		&m.InventoryCount,
		&m.ImageURL,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxShoeRepository) SaveShoe(ctx context.Context, shoe domain.Shoe) error {
	m := toModelShoe(shoe)
	query := `
		INSERT INTO shoes (shoe_id, donation_id, brand, model_name, gender, sport, size, condition, status, inventory_count, image_url, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ShoeID, m.DonationID, m.Brand, m.ModelName, m.Gender, m.Sport,
		m.Size, m.Condition, m.Status, m.InventoryCount, m.ImageURL,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save shoe: %w", err)
	}
	return nil
}

func (r *PgxShoeRepository) FindShoeByID(ctx context.Context, shoeID string) (*domain.Shoe, error) {
	query := `SELECT ` + shoeColumns + ` FROM shoes WHERE shoe_id = $1 AND deleted_at IS NULL;`
	m, err := scanShoe(r.Pool.QueryRow(ctx, query, shoeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shoe %s: %w", shoeID, err)
	}
	d := toDomainShoe(m)
	return &d, nil
}

func (r *PgxShoeRepository) FindShoesByIDs(ctx context.Context, shoeIDs []string) (map[string]domain.Shoe, error) {
	if len(shoeIDs) == 0 {
		return map[string]domain.Shoe{}, nil
	}
	query := `SELECT ` + shoeColumns + ` FROM shoes WHERE shoe_id = ANY($1) AND deleted_at IS NULL;`
	rows, err := r.Pool.Query(ctx, query, shoeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query shoes: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Shoe, len(shoeIDs))
	for rows.Next() {
		m, err := scanShoe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shoe row: %w", err)
		}
		out[m.ShoeID] = toDomainShoe(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shoe rows: %w", err)
	}
	return out, nil
}

func (r *PgxShoeRepository) ListShoes(ctx context.Context, filter portsrepo.ShoeListFilter, limit int, offset int) ([]domain.Shoe, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	conditions := []string{"deleted_at IS NULL"}
	args := []any{}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Sport != "" {
		args = append(args, filter.Sport)
		conditions = append(conditions, "sport = $"+strconv.Itoa(len(args)))
	}
	if filter.Gender != "" {
		args = append(args, filter.Gender)
		conditions = append(conditions, "gender = $"+strconv.Itoa(len(args)))
	}
	args = append(args, limit, offset)

	query := `
		SELECT ` + shoeColumns + `
		FROM shoes
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY created_at DESC, shoe_id DESC
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shoes: %w", err)
	}
	defer rows.Close()

	out := []domain.Shoe{}
	for rows.Next() {
		m, err := scanShoe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shoe row: %w", err)
		}
		out = append(out, toDomainShoe(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shoe rows: %w", err)
	}
	return out, nil
}

func (r *PgxShoeRepository) UpdateShoe(ctx context.Context, shoe domain.Shoe) error {
	m := toModelShoe(shoe)
	query := `
		UPDATE shoes
		SET brand = $1, model_name = $2, gender = $3, sport = $4, size = $5,
		    condition = $6, status = $7, inventory_count = $8, image_url = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE shoe_id = $12 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Brand, m.ModelName, m.Gender, m.Sport, m.Size, m.Condition,
		m.Status, m.InventoryCount, m.ImageURL,
		m.LastUpdatedAt, m.LastUpdatedBy, m.ShoeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shoe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShoeRepository) MarkShoeDeleted(ctx context.Context, shoeID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE shoes
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE shoe_id = $3 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, shoeID)
	if err != nil {
		return fmt.Errorf("failed to mark shoe deleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxShoeRepository) SetShoesStatus(ctx context.Context, shoeIDs []string, status domain.ShoeStatus, updatedBy string, updatedAt time.Time) error {
	if len(shoeIDs) == 0 {
		return nil
	}
	query := `
		UPDATE shoes
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE shoe_id = ANY($4);
	`
	_, err := r.Pool.Exec(ctx, query, string(status), updatedAt, updatedBy, shoeIDs)
	if err != nil {
		return fmt.Errorf("failed to set shoe status: %w", err)
	}
	return nil
}
