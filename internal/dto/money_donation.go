package dto

import (
	"time"

	"github.com/newstepsproject/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMoneyDonationRequest is the public money donation form payload.
type CreateMoneyDonationRequest struct {
	DonorName   string          `json:"donorName" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Phone       string          `json:"phone"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CheckNumber *string         `json:"checkNumber"`
	Notes       string          `json:"notes"`
}

// MoneyDonationResponse is the API representation of a money donation.
type MoneyDonationResponse struct {
	ReferenceID   string                       `json:"referenceID"`
	DonorName     string                       `json:"donorName"`
	Email         string                       `json:"email"`
	Phone         string                       `json:"phone"`
	Amount        decimal.Decimal              `json:"amount"`
	CheckNumber   *string                      `json:"checkNumber,omitempty"`
	Notes         string                       `json:"notes"`
	Status        string                       `json:"status"`
	StatusHistory []StatusHistoryEntryResponse `json:"statusHistory"`
	CreatedAt     time.Time                    `json:"createdAt"`
}

// ToMoneyDonationResponse converts a domain.MoneyDonation for API output.
func ToMoneyDonationResponse(d *domain.MoneyDonation) MoneyDonationResponse {
	return MoneyDonationResponse{
		ReferenceID:   d.ReferenceID,
		DonorName:     d.DonorName,
		Email:         d.Email,
		Phone:         d.Phone,
		Amount:        d.Amount,
		CheckNumber:   d.CheckNumber,
		Notes:         d.Notes,
		Status:        string(d.Status),
		StatusHistory: ToStatusHistoryResponse(d.StatusHistory),
		CreatedAt:     d.CreatedAt,
	}
}

// ListMoneyDonationsResponse wraps a page of money donations.
type ListMoneyDonationsResponse struct {
	Donations []MoneyDonationResponse `json:"donations"`
	NextToken *string                 `json:"nextToken,omitempty"`
}
