package services

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
	"github.com/newstepsproject/backend/internal/dto"
)

// DonationSvcFacade defines the business operations for shoe donations.
type DonationSvcFacade interface {
	// CreateDonation records a public donation form submission, assigning a
	// fresh reference ID.
	CreateDonation(ctx context.Context, req dto.CreateDonationRequest) (*domain.Donation, error)

	GetDonationByReferenceID(ctx context.Context, referenceID string) (*domain.Donation, error)

	ListDonations(ctx context.Context, params dto.ListParams) ([]domain.Donation, *string, error)

	// UpdateDonationStatus applies an admin status change, enforcing the
	// donation transition table and notifying the donor on real changes.
	UpdateDonationStatus(ctx context.Context, referenceID string, req dto.UpdateStatusRequest, updatedBy string) (*domain.Donation, error)
}
