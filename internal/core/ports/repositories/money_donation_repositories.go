package repositories

import (
	"context"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// MoneyDonationReader defines read operations for money donation data.
type MoneyDonationReader interface {
	FindMoneyDonationByReferenceID(ctx context.Context, referenceID string) (*domain.MoneyDonation, error)
	MoneyDonationReferenceIDExists(ctx context.Context, referenceID string) (bool, error)
	ListMoneyDonations(ctx context.Context, limit int, nextToken *string) ([]domain.MoneyDonation, *string, error)
}

// MoneyDonationWriter defines write operations for money donation data.
type MoneyDonationWriter interface {
	SaveMoneyDonation(ctx context.Context, donation domain.MoneyDonation) error
	UpdateMoneyDonationStatus(ctx context.Context, moneyDonationID string, status domain.DonationStatus, entry domain.StatusHistoryEntry, updatedBy string) error
}

// MoneyDonationRepositoryFacade combines all money donation repository interfaces.
type MoneyDonationRepositoryFacade interface {
	MoneyDonationReader
	MoneyDonationWriter
}
