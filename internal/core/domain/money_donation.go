package domain

import "github.com/shopspring/decimal"

// MoneyDonation is a monetary donation, usually arriving as a mailed check.
// It shares the donation status workflow: received means the check arrived,
// processed means it was deposited.
type MoneyDonation struct {
	MoneyDonationID string               `json:"moneyDonationID"`
	ReferenceID     string               `json:"referenceID"`
	DonorName       string               `json:"donorName"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone"`
	Amount          decimal.Decimal      `json:"amount"`
	CheckNumber     *string              `json:"checkNumber,omitempty"`
	Notes           string               `json:"notes"`
	Status          DonationStatus       `json:"status"`
	StatusHistory   []StatusHistoryEntry `json:"statusHistory"`
	AuditFields
}
