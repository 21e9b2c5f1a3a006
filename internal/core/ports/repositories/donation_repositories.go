package repositories

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// DonationReader defines read operations for shoe donation data.
type DonationReader interface {
	// FindDonationByReferenceID retrieves a donation, including its status
	// history, by its public reference ID.
	FindDonationByReferenceID(ctx context.Context, referenceID string) (*domain.Donation, error)

	// DonationReferenceIDExists reports whether a donation already carries
	// the given reference ID. Used by the collision re-roll loop at creation.
	DonationReferenceIDExists(ctx context.Context, referenceID string) (bool, error)

	// ListDonations retrieves a page of donations ordered newest first.
	ListDonations(ctx context.Context, limit int, nextToken *string) ([]domain.Donation, *string, error)
}

// DonationWriter defines write operations for shoe donation data.
type DonationWriter interface {
	// SaveDonation persists a new donation and its seed history entry.
	SaveDonation(ctx context.Context, donation domain.Donation) error

	// UpdateDonationStatus persists a status change and appends the history
	// entry in one transaction.
	UpdateDonationStatus(ctx context.Context, donationID string, status domain.DonationStatus, entry domain.StatusHistoryEntry, updatedBy string) error
}

// DonationRepositoryFacade combines all donation repository interfaces.
type DonationRepositoryFacade interface {
	DonationReader
	DonationWriter
}
