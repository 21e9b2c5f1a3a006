package services

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
	"github.com/newstepsproject/backend/internal/dto"
)

// VolunteerSvcFacade defines the business operations for volunteer,
// partnership, and contact submissions, which share one pipeline.
type VolunteerSvcFacade interface {
	CreateVolunteer(ctx context.Context, kind domain.VolunteerKind, req dto.CreateVolunteerRequest) (*domain.Volunteer, error)

	GetVolunteerByReferenceID(ctx context.Context, referenceID string) (*domain.Volunteer, error)

	ListVolunteers(ctx context.Context, params dto.ListVolunteersParams) ([]domain.Volunteer, *string, error)

	UpdateVolunteerStatus(ctx context.Context, referenceID string, req dto.UpdateStatusRequest, updatedBy string) (*domain.Volunteer, error)
}
