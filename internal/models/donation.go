package models

// Donation represents a row of the donations table.
type Donation struct {
	DonationID  string  `db:"donation_id"`
	ReferenceID string  `db:"reference_id"`
	OldID       *string `db:"old_id"`
	DonorName   string  `db:"donor_name"`
	Email       string  `db:"email"`
	Phone       string  `db:"phone"`
	Street      string  `db:"street"`
	City        string  `db:"city"`
	State       string  `db:"state"`
	ZipCode     string  `db:"zip_code"`
	NumShoes    int     `db:"num_shoes"`
	Notes       string  `db:"notes"`
	Status      string  `db:"status"`
	AuditFields
}
