package domain

import "time"

// ShoeStatus is the inventory state of a donated shoe. Unlike the workflow
// enums it has no transition table: the request lifecycle drives it directly
// (reserve on request creation, release on rejection, ship on fulfillment).
type ShoeStatus string

const (
	ShoeAvailable   ShoeStatus = "available"
	ShoeRequested   ShoeStatus = "requested"
	ShoeShipped     ShoeStatus = "shipped"
	ShoeUnavailable ShoeStatus = "unavailable"
)

// Valid reports whether s is a member of the shoe status enum.
func (s ShoeStatus) Valid() bool {
	switch s {
	case ShoeAvailable, ShoeRequested, ShoeShipped, ShoeUnavailable:
		return true
	}
	return false
}

// Shoe is a single inventory record created when a shoe donation is
// processed. InventoryCount never goes negative; its adjustments and the
// status flips are written as one pair.
type Shoe struct {
	ShoeID         string     `json:"shoeID"`
	DonationID     *string    `json:"donationID,omitempty"` // originating donation, if tracked
	Brand          string     `json:"brand"`
	ModelName      string     `json:"modelName"`
	Gender         string     `json:"gender"`
	Sport          string     `json:"sport"`
	Size           string     `json:"size"`
	Condition      string     `json:"condition"`
	Status         ShoeStatus `json:"status"`
	InventoryCount int        `json:"inventoryCount"`
	ImageURL       string     `json:"imageURL"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
