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

type PgxDonationRepository struct {
	BaseRepository
}

func newPgxDonationRepository(db *pgxpool.Pool) portsrepo.DonationRepositoryFacade {
	return &PgxDonationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DonationRepositoryFacade = (*PgxDonationRepository)(nil)

func toModelDonation(d domain.Donation) models.Donation {
	return models.Donation{
		DonationID:  d.DonationID,
		ReferenceID: d.ReferenceID,
		OldID:       d.OldID,
		DonorName:   d.DonorName,
		Email:       d.Email,
		Phone:       d.Phone,
		Street:      d.Street,
		City:        d.City,
		State:       d.State,
		ZipCode:     d.ZipCode,
		NumShoes:    d.NumShoes,
		Notes:       d.Notes,
		Status:      string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainDonation(m models.Donation) domain.Donation {
	return domain.Donation{
		DonationID:  m.DonationID,
		ReferenceID: m.ReferenceID,
		OldID:       m.OldID,
		DonorName:   m.DonorName,
		Email:       m.Email,
		Phone:       m.Phone,
		Street:      m.Street,
		City:        m.City,
		State:       m.State,
		ZipCode:     m.ZipCode,
		NumShoes:    m.NumShoes,
		Notes:       m.Notes,
		Status:      domain.DonationStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const donationColumns = `donation_id, reference_id, old_id, donor_name, email, phone, street, city, state, zip_code, num_shoes, notes, status, created_at, created_by, last_updated_at, last_updated_by`

func scanDonation(row pgx.Row) (models.Donation, error) {
	var m models.Donation
	err := row.Scan(
		&m.DonationID,
		&m.ReferenceID,
		&m.OldID,
		&m.DonorName,
		&m.Email,
		&m.Phone,
		&m.Street,
		&m.City,
		&m.State,
		&m.ZipCode,
		&m.NumShoes,
		&m.Notes,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelDonation(donation)
	query := `
		INSERT INTO donations (` + donationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, query,
		m.DonationID, m.ReferenceID, m.OldID, m.DonorName, m.Email, m.Phone,
		m.Street, m.City, m.State, m.ZipCode, m.NumShoes, m.Notes, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save donation: %w", err)
	}

	for _, entry := range donation.StatusHistory {
		if err := insertStatusHistory(ctx, tx, entityKindDonation, donation.DonationID, entry); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxDonationRepository) FindDonationByReferenceID(ctx context.Context, referenceID string) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE reference_id = $1;`
	m, err := scanDonation(r.Pool.QueryRow(ctx, query, referenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find donation %s: %w", referenceID, err)
	}

	d := toDomainDonation(m)
	d.StatusHistory, err = loadStatusHistory(ctx, r.Pool, entityKindDonation, d.DonationID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDonationRepository) DonationReferenceIDExists(ctx context.Context, referenceID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM donations WHERE reference_id = $1);`, referenceID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check donation reference id: %w", err)
	}
	return exists, nil
}

func (r *PgxDonationRepository) ListDonations(ctx context.Context, limit int, nextToken *string) ([]domain.Donation, *string, error) {
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
		SELECT ` + donationColumns + `
		FROM donations
		WHERE ($1::timestamptz IS NULL OR (created_at, donation_id) < ($1::timestamptz, $2::text))
		ORDER BY created_at DESC, donation_id DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, cursorTime, cursorID, limit+1)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query donations: %w", err)
	}
	defer rows.Close()

	var ms []models.Donation
	for rows.Next() {
		m, err := scanDonation(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan donation row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read donation rows: %w", err)
	}

	var newToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.DonationID)
		newToken = &token
	}

	ids := make([]string, len(ms))
	out := make([]domain.Donation, len(ms))
	for i, m := range ms {
		ids[i] = m.DonationID
		out[i] = toDomainDonation(m)
	}
	histories, err := loadStatusHistoryBatch(ctx, r.Pool, entityKindDonation, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range out {
		out[i].StatusHistory = histories[out[i].DonationID]
	}
	return out, newToken, nil
}

func (r *PgxDonationRepository) UpdateDonationStatus(ctx context.Context, donationID string, status domain.DonationStatus, entry domain.StatusHistoryEntry, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE donations
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE donation_id = $4;
	`
	tag, err := tx.Exec(ctx, query, string(status), entry.CreatedAt, updatedBy, donationID)
	if err != nil {
		return fmt.Errorf("failed to update donation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertStatusHistory(ctx, tx, entityKindDonation, donationID, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
