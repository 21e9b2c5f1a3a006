package models

import "github.com/shopspring/decimal"

// MoneyDonation represents a row of the money_donations table.
type MoneyDonation struct {
	MoneyDonationID string          `db:"money_donation_id"`
	ReferenceID     string          `db:"reference_id"`
	DonorName       string          `db:"donor_name"`
	Email           string          `db:"email"`
	Phone           string          `db:"phone"`
	Amount          decimal.Decimal `db:"amount"`
	CheckNumber     *string         `db:"check_number"`
	Notes           string          `db:"notes"`
	Status          string          `db:"status"`
	AuditFields
}
