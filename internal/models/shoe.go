package models

import "time"

// Shoe represents a row of the shoes inventory table.
type Shoe struct {
	ShoeID         string  `db:"shoe_id"`
	DonationID     *string `db:"donation_id"`
	Brand          string  `db:"brand"`
	ModelName      string  `db:"model_name"`
	Gender         string  `db:"gender"`
	Sport          string  `db:"sport"`
	Size           string  `db:"size"`
	Condition      string  `db:"condition"`
	Status         string  `db:"status"`
	InventoryCount int     `db:"inventory_count"`
	ImageURL       string  `db:"image_url"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
