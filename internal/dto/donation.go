package dto

import (
	"time"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// CreateDonationRequest is the public shoe donation form payload.
type CreateDonationRequest struct {
	DonorName string `json:"donorName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zipCode" binding:"required"`
	NumShoes  int    `json:"numShoes" binding:"required,min=1"`
	Notes     string `json:"notes"`
	// OldID carries the pre-launch identifier when importing legacy records.
	OldID *string `json:"oldID,omitempty"`
}

// DonationResponse is the API representation of a donation.
type DonationResponse struct {
	ReferenceID   string                       `json:"referenceID"`
	OldID         *string                      `json:"oldID,omitempty"`
	DonorName     string                       `json:"donorName"`
	Email         string                       `json:"email"`
	Phone         string                       `json:"phone"`
	Street        string                       `json:"street"`
	City          string                       `json:"city"`
	State         string                       `json:"state"`
	ZipCode       string                       `json:"zipCode"`
	NumShoes      int                          `json:"numShoes"`
	Notes         string                       `json:"notes"`
	Status        string                       `json:"status"`
	StatusHistory []StatusHistoryEntryResponse `json:"statusHistory"`
	CreatedAt     time.Time                    `json:"createdAt"`
}

// ToDonationResponse converts a domain.Donation for API output.
func ToDonationResponse(d *domain.Donation) DonationResponse {
	return DonationResponse{
		ReferenceID:   d.ReferenceID,
		OldID:         d.OldID,
		DonorName:     d.DonorName,
		Email:         d.Email,
		Phone:         d.Phone,
		Street:        d.Street,
		City:          d.City,
		State:         d.State,
		ZipCode:       d.ZipCode,
		NumShoes:      d.NumShoes,
		Notes:         d.Notes,
		Status:        string(d.Status),
		StatusHistory: ToStatusHistoryResponse(d.StatusHistory),
		CreatedAt:     d.CreatedAt,
	}
}

// ListDonationsResponse wraps a page of donations.
type ListDonationsResponse struct {
	Donations []DonationResponse `json:"donations"`
	NextToken *string            `json:"nextToken,omitempty"`
}
