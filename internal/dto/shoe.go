package dto

import (
	"time"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// CreateShoeRequest is the admin payload for adding processed inventory.
type CreateShoeRequest struct {
	DonationID     *string `json:"donationID"`
	Brand          string  `json:"brand" binding:"required"`
	ModelName      string  `json:"modelName"`
	Gender         string  `json:"gender" binding:"required"`
	Sport          string  `json:"sport" binding:"required"`
	Size           string  `json:"size" binding:"required"`
	Condition      string  `json:"condition"`
	InventoryCount int     `json:"inventoryCount" binding:"required,min=1"`
	ImageURL       string  `json:"imageURL"`
}

// UpdateShoeRequest is a partial update; nil fields are left unchanged.
type UpdateShoeRequest struct {
	Brand          *string `json:"brand"`
	ModelName      *string `json:"modelName"`
	Gender         *string `json:"gender"`
	Sport          *string `json:"sport"`
	Size           *string `json:"size"`
	Condition      *string `json:"condition"`
	Status         *string `json:"status"`
	InventoryCount *int    `json:"inventoryCount" binding:"omitempty,min=0"`
	ImageURL       *string `json:"imageURL"`
}

// ListShoesParams filters the public inventory browse endpoint.
type ListShoesParams struct {
	Status string `form:"status"`
	Sport  string `form:"sport"`
	Gender string `form:"gender"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ShoeResponse is the API representation of an inventory record.
type ShoeResponse struct {
	ShoeID         string    `json:"shoeID"`
	DonationID     *string   `json:"donationID,omitempty"`
	Brand          string    `json:"brand"`
	ModelName      string    `json:"modelName"`
	Gender         string    `json:"gender"`
	Sport          string    `json:"sport"`
	Size           string    `json:"size"`
	Condition      string    `json:"condition"`
	Status         string    `json:"status"`
	InventoryCount int       `json:"inventoryCount"`
	ImageURL       string    `json:"imageURL"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToShoeResponse converts a domain.Shoe for API output.
func ToShoeResponse(s *domain.Shoe) ShoeResponse {
	return ShoeResponse{
		ShoeID:         s.ShoeID,
		DonationID:     s.DonationID,
		Brand:          s.Brand,
		ModelName:      s.ModelName,
		Gender:         s.Gender,
		Sport:          s.Sport,
		Size:           s.Size,
		Condition:      s.Condition,
		Status:         string(s.Status),
		InventoryCount: s.InventoryCount,
		ImageURL:       s.ImageURL,
		CreatedAt:      s.CreatedAt,
	}
}

// ListShoesResponse wraps a page of inventory records.
type ListShoesResponse struct {
	Shoes []ShoeResponse `json:"shoes"`
}
