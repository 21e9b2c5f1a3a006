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

type PgxVolunteerRepository struct {
	BaseRepository
}

func newPgxVolunteerRepository(db *pgxpool.Pool) portsrepo.VolunteerRepositoryFacade {
	return &PgxVolunteerRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.VolunteerRepositoryFacade = (*PgxVolunteerRepository)(nil)

func toModelVolunteer(d domain.Volunteer) models.Volunteer {
	return models.Volunteer{
		VolunteerID: d.VolunteerID,
		ReferenceID: d.ReferenceID,
		Kind:        string(d.Kind),
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Message:     d.Message,
		Status:      string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainVolunteer(m models.Volunteer) domain.Volunteer {
	return domain.Volunteer{
		VolunteerID: m.VolunteerID,
		ReferenceID: m.ReferenceID,
		Kind:        domain.VolunteerKind(m.Kind),
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Message:     m.Message,
		Status:      domain.VolunteerStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const volunteerColumns = `volunteer_id, reference_id, kind, name, email, phone, message, status, created_at, created_by, last_updated_at, last_updated_by`

func scanVolunteer(row pgx.Row) (models.Volunteer, error) {
	var m models.Volunteer
	err := row.Scan(
		&m.VolunteerID,
		&m.ReferenceID,
		&m.Kind,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Message,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxVolunteerRepository) SaveVolunteer(ctx context.Context, volunteer domain.Volunteer) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelVolunteer(volunteer)
	query := `
		INSERT INTO volunteers (` + volunteerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.VolunteerID, m.ReferenceID, m.Kind, m.Name, m.Email, m.Phone,
		m.Message, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}

	for _, entry := range volunteer.StatusHistory {
		if err := insertStatusHistory(ctx, tx, entityKindVolunteer, volunteer.VolunteerID, entry); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

func (r *PgxVolunteerRepository) FindVolunteerByReferenceID(ctx context.Context, referenceID string) (*domain.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE reference_id = $1;`
	m, err := scanVolunteer(r.Pool.QueryRow(ctx, query, referenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find submission %s: %w", referenceID, err)
	}

	d := toDomainVolunteer(m)
	d.StatusHistory, err = loadStatusHistory(ctx, r.Pool, entityKindVolunteer, d.VolunteerID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxVolunteerRepository) VolunteerReferenceIDExists(ctx context.Context, referenceID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM volunteers WHERE reference_id = $1);`, referenceID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check submission reference id: %w", err)
	}
	return exists, nil
}

func (r *PgxVolunteerRepository) ListVolunteers(ctx context.Context, kind domain.VolunteerKind, limit int, nextToken *string) ([]domain.Volunteer, *string, error) {
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
		SELECT ` + volunteerColumns + `
		FROM volunteers
		WHERE ($1::text = '' OR kind = $1::text)
		  AND ($2::timestamptz IS NULL OR (created_at, volunteer_id) < ($2::timestamptz, $3::text))
		ORDER BY created_at DESC, volunteer_id DESC
		LIMIT $4;
	`
	rows, err := r.Pool.Query(ctx, query, string(kind), cursorTime, cursorID, limit+1)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var ms []models.Volunteer
	for rows.Next() {
		m, err := scanVolunteer(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read submission rows: %w", err)
	}

	var newToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.VolunteerID)
		newToken = &token
	}

	ids := make([]string, len(ms))
	out := make([]domain.Volunteer, len(ms))
	for i, m := range ms {
		ids[i] = m.VolunteerID
		out[i] = toDomainVolunteer(m)
	}
	histories, err := loadStatusHistoryBatch(ctx, r.Pool, entityKindVolunteer, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range out {
		out[i].StatusHistory = histories[out[i].VolunteerID]
	}
	return out, newToken, nil
}

func (r *PgxVolunteerRepository) UpdateVolunteerStatus(ctx context.Context, volunteerID string, status domain.VolunteerStatus, entry domain.StatusHistoryEntry, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE volunteers
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE volunteer_id = $4;
	`
	tag, err := tx.Exec(ctx, query, string(status), entry.CreatedAt, updatedBy, volunteerID)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertStatusHistory(ctx, tx, entityKindVolunteer, volunteerID, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
