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

type PgxMoneyDonationRepository struct {
	BaseRepository
}

func newPgxMoneyDonationRepository(db *pgxpool.Pool) portsrepo.MoneyDonationRepositoryFacade {
	return &PgxMoneyDonationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.MoneyDonationRepositoryFacade = (*PgxMoneyDonationRepository)(nil)

func toModelMoneyDonation(d domain.MoneyDonation) models.MoneyDonation {
	return models.MoneyDonation{
		MoneyDonationID: d.MoneyDonationID,
		ReferenceID:     d.ReferenceID,
		DonorName:       d.DonorName,
		Email:           d.Email,
		Phone:           d.Phone,
		Amount:          d.Amount,
		CheckNumber:     d.CheckNumber,
		Notes:           d.Notes,
		Status:          string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainMoneyDonation(m models.MoneyDonation) domain.MoneyDonation {
	return domain.MoneyDonation{
		MoneyDonationID: m.MoneyDonationID,
		ReferenceID:     m.ReferenceID,
		DonorName:       m.DonorName,
		Email:           m.Email,
		Phone:           m.Phone,
		Amount:          m.Amount,
		CheckNumber:     m.CheckNumber,
		Notes:           m.Notes,
		Status:          domain.DonationStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const moneyDonationColumns = `money_donation_id, reference_id, donor_name, email, phone, amount, check_number, notes, status, created_at, created_by, last_updated_at, last_updated_by`

func scanMoneyDonation(row pgx.Row) (models.MoneyDonation, error) {
	var m models.MoneyDonation
	err := row.Scan(
		&m.MoneyDonationID,
		&m.ReferenceID,
		&m.DonorName,
		&m.Email,
		&m.Phone,
		&m.Amount,
		&m.CheckNumber,
		&m.Notes,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxMoneyDonationRepository) SaveMoneyDonation(ctx context.Context, donation domain.MoneyDonation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelMoneyDonation(donation)
	query := `
		INSERT INTO money_donations (` + moneyDonationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.MoneyDonationID, m.ReferenceID, m.DonorName, m.Email, m.Phone,
		m.Amount, m.CheckNumber, m.Notes, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save money donation: %w", err)
	}

	for _, entry := range donation.StatusHistory {
		if err := insertStatusHistory(ctx, tx, entityKindMoneyDonation, donation.MoneyDonationID, entry); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxMoneyDonationRepository) FindMoneyDonationByReferenceID(ctx context.Context, referenceID string) (*domain.MoneyDonation, error) {
	query := `SELECT ` + moneyDonationColumns + ` FROM money_donations WHERE reference_id = $1;`
	m, err := scanMoneyDonation(r.Pool.QueryRow(ctx, query, referenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find money donation %s: %w", referenceID, err)
	}

	d := toDomainMoneyDonation(m)
	d.StatusHistory, err = loadStatusHistory(ctx, r.Pool, entityKindMoneyDonation, d.MoneyDonationID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxMoneyDonationRepository) MoneyDonationReferenceIDExists(ctx context.Context, referenceID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM money_donations WHERE reference_id = $1);`, referenceID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check money donation reference id: %w", err)
	}
	return exists, nil
}

func (r *PgxMoneyDonationRepository) ListMoneyDonations(ctx context.Context, limit int, nextToken *string) ([]domain.MoneyDonation, *string, error) {
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
		SELECT ` + moneyDonationColumns + `
		FROM money_donations
		WHERE ($1::timestamptz IS NULL OR (created_at, money_donation_id) < ($1::timestamptz, $2::text))
		ORDER BY created_at DESC, money_donation_id DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, cursorTime, cursorID, limit+1)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query money donations: %w", err)
	}
	defer rows.Close()

	var ms []models.MoneyDonation
	for rows.Next() {
		m, err := scanMoneyDonation(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan money donation row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read money donation rows: %w", err)
	}

	var newToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.MoneyDonationID)
		newToken = &token
	}

	ids := make([]string, len(ms))
	out := make([]domain.MoneyDonation, len(ms))
	for i, m := range ms {
		ids[i] = m.MoneyDonationID
		out[i] = toDomainMoneyDonation(m)
	}
	histories, err := loadStatusHistoryBatch(ctx, r.Pool, entityKindMoneyDonation, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range out {
		out[i].StatusHistory = histories[out[i].MoneyDonationID]
	}
	return out, newToken, nil
}

func (r *PgxMoneyDonationRepository) UpdateMoneyDonationStatus(ctx context.Context, moneyDonationID string, status domain.DonationStatus, entry domain.StatusHistoryEntry, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE money_donations
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE money_donation_id = $4;
	`
	tag, err := tx.Exec(ctx, query, string(status), entry.CreatedAt, updatedBy, moneyDonationID)
	if err != nil {
		return fmt.Errorf("failed to update money donation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertStatusHistory(ctx, tx, entityKindMoneyDonation, moneyDonationID, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
