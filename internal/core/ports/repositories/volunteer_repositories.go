package repositories

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// VolunteerReader defines read operations for volunteer/partnership/contact
// submissions.
type VolunteerReader interface {
	FindVolunteerByReferenceID(ctx context.Context, referenceID string) (*domain.Volunteer, error)
	VolunteerReferenceIDExists(ctx context.Context, referenceID string) (bool, error)

	// ListVolunteers retrieves a page of submissions, optionally narrowed to
	// one kind (empty kind means all).
	ListVolunteers(ctx context.Context, kind domain.VolunteerKind, limit int, nextToken *string) ([]domain.Volunteer, *string, error)
}

// VolunteerWriter defines write operations for submissions.
type VolunteerWriter interface {
	SaveVolunteer(ctx context.Context, volunteer domain.Volunteer) error
	UpdateVolunteerStatus(ctx context.Context, volunteerID string, status domain.VolunteerStatus, entry domain.StatusHistoryEntry, updatedBy string) error
}

// VolunteerRepositoryFacade combines all submission repository interfaces.
type VolunteerRepositoryFacade interface {
	VolunteerReader
	VolunteerWriter
}
