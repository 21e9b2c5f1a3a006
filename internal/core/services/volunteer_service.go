package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/newstepsproject/backend/internal/apperrors"
	"github.com/newstepsproject/backend/internal/core/domain"
	portsrepo "github.com/newstepsproject/backend/internal/core/ports/repositories"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/dto"
	"github.com/newstepsproject/backend/internal/utils/refid"
)

// Each submission kind carries its own reference ID prefix even though the
// records share a table and workflow.
var volunteerEntityTypes = map[domain.VolunteerKind]refid.EntityType{
	domain.KindVolunteer:   refid.Volunteer,
	domain.KindPartnership: refid.Partnership,
	domain.KindContact:     refid.Contact,
}

type volunteerService struct {
	BaseService
	repo portsrepo.VolunteerRepositoryFacade
}

var _ portssvc.VolunteerSvcFacade = (*volunteerService)(nil)

// NewVolunteerService creates a new submissions service.
func NewVolunteerService(repo portsrepo.VolunteerRepositoryFacade) portssvc.VolunteerSvcFacade {
	return &volunteerService{repo: repo}
}

func (s *volunteerService) CreateVolunteer(ctx context.Context, kind domain.VolunteerKind, req dto.CreateVolunteerRequest) (*domain.Volunteer, error) {
	entityType, ok := volunteerEntityTypes[kind]
	if !ok {
		return nil, fmt.Errorf("unknown submission kind %q: %w", kind, apperrors.ErrValidation)
	}

	refID, err := newReferenceID(ctx, entityType, refid.Options{}, s.repo.VolunteerReferenceIDExists)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	volunteer := domain.Volunteer{
		VolunteerID: uuid.NewString(),
		ReferenceID: refID,
		Kind:        kind,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		Status:      domain.VolunteerSubmitted,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: string(domain.VolunteerSubmitted), Note: "Form submitted", CreatedAt: now},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     publicActor,
			LastUpdatedAt: now,
			LastUpdatedBy: publicActor,
		},
	}

	if err := s.repo.SaveVolunteer(ctx, volunteer); err != nil {
		return nil, fmt.Errorf("saving submission: %w", err)
	}

	s.LogInfo(ctx, "submission created", slog.String("reference_id", refID), slog.String("kind", string(kind)))
	return &volunteer, nil
}

func (s *volunteerService) GetVolunteerByReferenceID(ctx context.Context, referenceID string) (*domain.Volunteer, error) {
	return s.repo.FindVolunteerByReferenceID(ctx, referenceID)
}

func (s *volunteerService) ListVolunteers(ctx context.Context, params dto.ListVolunteersParams) ([]domain.Volunteer, *string, error) {
	kind := domain.VolunteerKind(params.Kind)
	if params.Kind != "" && !kind.Valid() {
		return nil, nil, fmt.Errorf("unknown submission kind %q: %w", params.Kind, apperrors.ErrValidation)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListVolunteers(ctx, kind, limit, params.NextToken)
}

func (s *volunteerService) UpdateVolunteerStatus(ctx context.Context, referenceID string, req dto.UpdateStatusRequest, updatedBy string) (*domain.Volunteer, error) {
	volunteer, err := s.repo.FindVolunteerByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}

	next := domain.VolunteerStatus(req.Status)
	if !next.Valid() {
		return nil, fmt.Errorf("unknown submission status %q: %w", req.Status, apperrors.ErrValidation)
	}
	if !volunteer.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot move submission from %s to %s: %w", volunteer.Status, next, apperrors.ErrTransition)
	}

	now := time.Now()
	entry := domain.StatusHistoryEntry{Status: string(next), Note: statusNote(req.Note, string(next)), CreatedAt: now}
	if err := s.repo.UpdateVolunteerStatus(ctx, volunteer.VolunteerID, next, entry, updatedBy); err != nil {
		return nil, fmt.Errorf("updating submission status: %w", err)
	}

	volunteer.Status = next
	volunteer.StatusHistory = append(volunteer.StatusHistory, entry)
	volunteer.LastUpdatedAt = now
	volunteer.LastUpdatedBy = updatedBy
	return volunteer, nil
}
