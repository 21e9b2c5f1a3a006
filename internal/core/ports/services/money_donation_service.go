package services

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
	"github.com/newstepsproject/backend/internal/dto"
)

// MoneyDonationSvcFacade defines the business operations for money donations.
type MoneyDonationSvcFacade interface {
	CreateMoneyDonation(ctx context.Context, req dto.CreateMoneyDonationRequest) (*domain.MoneyDonation, error)

	GetMoneyDonationByReferenceID(ctx context.Context, referenceID string) (*domain.MoneyDonation, error)

	ListMoneyDonations(ctx context.Context, params dto.ListParams) ([]domain.MoneyDonation, *string, error)

	UpdateMoneyDonationStatus(ctx context.Context, referenceID string, req dto.UpdateStatusRequest, updatedBy string) (*domain.MoneyDonation, error)
}
