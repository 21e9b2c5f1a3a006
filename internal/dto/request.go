package dto

import (
	"time"

	"github.com/newstepsproject/backend/internal/core/domain"
)

// CreateRequestItem is one line of the public shoe request form. ShoeID, if
// set, binds the line to a browsable inventory record.
type CreateRequestItem struct {
	ShoeID *string `json:"shoeID"`
	Brand  string  `json:"brand"`
	Sport  string  `json:"sport"`
	Gender string  `json:"gender"`
	Size   string  `json:"size" binding:"required"`
	Notes  string  `json:"notes"`
}

// CreateRequestRequest is the public shoe request form payload.
type CreateRequestRequest struct {
	RequesterName string              `json:"requesterName" binding:"required"`
	Email         string              `json:"email" binding:"required,email"`
	Phone         string              `json:"phone"`
	Street        string              `json:"street" binding:"required"`
	City          string              `json:"city" binding:"required"`
	State         string              `json:"state" binding:"required"`
	ZipCode       string              `json:"zipCode" binding:"required"`
	Notes         string              `json:"notes"`
	Items         []CreateRequestItem `json:"items" binding:"required,min=1,max=4,dive"`
}

// RequestItemResponse is one line of a request in API output.
type RequestItemResponse struct {
	ShoeID *string `json:"shoeID,omitempty"`
	Brand  string  `json:"brand"`
	Sport  string  `json:"sport"`
	Gender string  `json:"gender"`
	Size   string  `json:"size"`
	Notes  string  `json:"notes"`
}

// RequestResponse is the API representation of a shoe request.
type RequestResponse struct {
	ReferenceID   string                       `json:"referenceID"`
	RequesterName string                       `json:"requesterName"`
	Email         string                       `json:"email"`
	Phone         string                       `json:"phone"`
	Street        string                       `json:"street"`
	City          string                       `json:"city"`
	State         string                       `json:"state"`
	ZipCode       string                       `json:"zipCode"`
	Notes         string                       `json:"notes"`
	Status        string                       `json:"status"`
	Items         []RequestItemResponse        `json:"items"`
	StatusHistory []StatusHistoryEntryResponse `json:"statusHistory"`
	CreatedAt     time.Time                    `json:"createdAt"`
}

// ToRequestResponse converts a domain.ShoeRequest for API output.
func ToRequestResponse(r *domain.ShoeRequest) RequestResponse {
	items := make([]RequestItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = RequestItemResponse{
			ShoeID: item.ShoeID,
			Brand:  item.Brand,
			Sport:  item.Sport,
			Gender: item.Gender,
			Size:   item.Size,
			Notes:  item.Notes,
		}
	}
	return RequestResponse{
		ReferenceID:   r.ReferenceID,
		RequesterName: r.RequesterName,
		Email:         r.Email,
		Phone:         r.Phone,
		Street:        r.Street,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
		Notes:         r.Notes,
		Status:        string(r.Status),
		Items:         items,
		StatusHistory: ToStatusHistoryResponse(r.StatusHistory),
		CreatedAt:     r.CreatedAt,
	}
}

// ListRequestsResponse wraps a page of shoe requests.
type ListRequestsResponse struct {
	Requests  []RequestResponse `json:"requests"`
	NextToken *string           `json:"nextToken,omitempty"`
}
